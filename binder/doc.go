// Package binder populates request structs from path parameters, query
// strings and JSON bodies. Binders share the signature
// func(r *http.Request, v any) error and plug into handler.WithBinders.
package binder
