package entity

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/entitykit/binder"
	"github.com/dmitrymomot/entitykit/handler"
	"github.com/dmitrymomot/entitykit/pkg/logger"
)

type getRequest struct {
	ID string `path:"id"`
}

type updateRequest struct {
	ID string `path:"id"`
}

type deleteRequest struct {
	ID        string `path:"id"`
	Permanent string `query:"permanent"`
}

// Handle returns the resource routes, meant to be mounted at /entities.
// The session must already be loaded into the request context.
//
//	r.Mount("/entities", entityHandler.Handle())
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/{id}", handler.Wrap(h.get,
		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, getRequest](h.wrapFailed),
	))
	r.Patch("/{id}", handler.Wrap(h.update,
		handler.WithBinders[handler.Context, updateRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, updateRequest](h.wrapFailed),
	))
	r.Delete("/{id}", handler.Wrap(h.delete,
		handler.WithBinders[handler.Context, deleteRequest](
			binder.Path(chi.URLParam),
			binder.Query(),
		),
		handler.WithErrorHandler[handler.Context, deleteRequest](h.wrapFailed),
	))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

// wrapFailed logs binding and rendering failures before the default writer
// turns them into an envelope.
func (h *Handler) wrapFailed(ctx handler.Context, err error) {
	if errors.Is(err, handler.ErrBadRequest) {
		h.log.WarnContext(ctx, "failed to bind request", logger.Error(err))
	} else {
		h.log.ErrorContext(ctx, "failed to write response", logger.Error(err))
	}
	handler.WriteError(ctx, err)
}

func (h *Handler) get(ctx handler.Context, req getRequest) handler.Response {
	return h.Get(ctx, CallerFromContext(ctx), req.ID)
}

// update enforces the body size limit before anything else. Other read
// failures are reported after authentication like any malformed body.
func (h *Handler) update(ctx handler.Context, req updateRequest) handler.Response {
	caller := CallerFromContext(ctx)
	raw, err := binder.ReadBody(ctx.Request())
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return handler.Error(http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge))
	case err != nil:
		if _, resp := h.scope(ctx, caller); resp != nil {
			return resp
		}
		h.log.WarnContext(ctx, "failed to read request body", logger.Error(err), logger.EntityID(req.ID))
		return handler.Error(http.StatusBadRequest, msgValidation, decodeDetails(err)...)
	}
	return h.Update(ctx, caller, req.ID, raw)
}

func (h *Handler) delete(ctx handler.Context, req deleteRequest) handler.Response {
	return h.Delete(ctx, CallerFromContext(ctx), req.ID, req.Permanent == permanentQueryValue)
}
