package binder

import (
	"fmt"
	"net/http"
)

// Path creates a path parameter binder using extractor to read values,
// e.g. chi.URLParam.
//
//	type GetRequest struct {
//		ID string `path:"id"`
//	}
//
//	r.Get("/entities/{id}", handler.Wrap(h, handler.WithBinders(binder.Path(chi.URLParam))))
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}
		return bindToStruct(v, "path", func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrInvalidPath)
	}
}
