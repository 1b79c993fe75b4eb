package handler

import "net/http"

// HTTPError is a transport-level failure with a status code and a stable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// ErrBadRequest wraps every binder failure reported by Wrap.
var ErrBadRequest = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}

// NotFound and MethodNotAllowed render the JSON envelope for router fallbacks.
func NotFound(w http.ResponseWriter, r *http.Request) {
	_ = Error(http.StatusNotFound, http.StatusText(http.StatusNotFound)).Render(w, r)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = Error(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed)).Render(w, r)
}
