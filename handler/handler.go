package handler

import (
	"errors"
	"net/http"
)

// HandlerFunc is a typed endpoint: it gets the bound request value and
// returns a Response to render.
//
//	get := func(ctx handler.Context, req getRequest) handler.Response {
//		e, err := svc.Get(ctx, tenantID, req.ID)
//		if err != nil {
//			return handler.Error(http.StatusNotFound, "Not found")
//		}
//		return handler.Success(e)
//	}
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from the request. Binders only look at their own struct tags,
// so several can run against the same value.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a binding or rendering failure.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapper[C, R])

type wrapper[C Context, R any] struct {
	binders []Bind
	onError ErrorHandler[C]
}

// WithBinders appends request binders, applied in order.
//
//	r.Delete("/{id}", handler.Wrap(h.delete,
//		handler.WithBinders[handler.Context, deleteRequest](
//			binder.Path(chi.URLParam),
//			binder.Query(),
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(w *wrapper[C, R]) {
		w.binders = append(w.binders, binders...)
	}
}

// WithErrorHandler replaces WriteError, typically to log before writing.
// Nil is ignored.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(w *wrapper[C, R]) {
		if h != nil {
			w.onError = h
		}
	}
}

// WriteError is the default ErrorHandler. It renders the error envelope; an
// HTTPError keeps its code and anything else is a 500 with the generic
// status text.
func WriteError[C Context](ctx C, err error) {
	code := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}
	_ = Error(code, http.StatusText(code)).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap adapts a typed HandlerFunc to http.HandlerFunc. C must be satisfied by
// the value NewContext returns.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	wr := &wrapper[C, R]{onError: WriteError[C]}
	for _, opt := range opts {
		opt(wr)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := NewContext(w, r).(C)
		if !ok {
			panic("handler: context type is not satisfied by NewContext")
		}

		req, err := wr.bind(r)
		if err != nil {
			wr.onError(ctx, errors.Join(ErrBadRequest, err))
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			wr.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			wr.onError(ctx, err)
		}
	}
}

func (wr *wrapper[C, R]) bind(r *http.Request) (R, error) {
	var req R
	for _, b := range wr.binders {
		if err := b(r, &req); err != nil {
			return req, err
		}
	}
	return req, nil
}
