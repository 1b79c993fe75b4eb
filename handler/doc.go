// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and a typed request value populated by
// binders, and returns a Response:
//
//	type GetRequest struct {
//		ID string `path:"id"`
//	}
//
//	func get(ctx handler.Context, req GetRequest) handler.Response {
//		e, err := svc.Get(ctx, req.ID)
//		if err != nil {
//			return handler.Error(http.StatusNotFound, "Not found")
//		}
//		return handler.Success(e)
//	}
//
//	r.Get("/entities/{id}", handler.Wrap(get,
//		handler.WithBinders[handler.Context, GetRequest](binder.Path(chi.URLParam)),
//	))
//
// Every JSON body follows the Envelope shape:
//
//	{"success": true, "data": {...}}
//	{"success": true, "message": "Entity archived"}
//	{"error": "Validation error", "details": [{"field": "name", "message": "...", "code": "too_small"}]}
//
// Binding and rendering failures go to the ErrorHandler; the default one
// renders the envelope with the HTTPError status or 500.
package handler
