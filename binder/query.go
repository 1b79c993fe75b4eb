package binder

import "net/http"

// Query creates a query parameter binder.
//
// Supported tags: `query:"name"`, `query:"-"` to skip. Slices accept both
// repeated parameters and comma-separated values; pointers mark optional fields.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindToStruct(v, "query", func(name string) []string {
			return q[name]
		}, ErrInvalidQuery)
	}
}
