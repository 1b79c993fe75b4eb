package entity

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/entitykit/binder"
	"github.com/dmitrymomot/entitykit/handler"
	"github.com/dmitrymomot/entitykit/pkg/logger"
	"github.com/dmitrymomot/entitykit/pkg/validator"
	"github.com/dmitrymomot/entitykit/svc/entity"
	"github.com/dmitrymomot/entitykit/svc/tenant"
)

const (
	msgUnauthorized     = "Unauthorized"
	msgNotFound         = "Not found or unauthorized"
	msgValidation       = "Validation error"
	msgInternal         = "Internal server error"
	msgEntityDeleted    = "Entity deleted"
	msgEntityArchived   = "Entity archived"
	bodyField           = "body"
	permanentQueryValue = "true"
)

// TenantResolver resolves the tenant a request is scoped to.
// *tenant.Lookup satisfies it.
type TenantResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*tenant.Tenant, error)
}

// Handler serves the entity resource. It holds only its collaborators and is
// safe for concurrent use.
type Handler struct {
	service entity.Service
	tenants TenantResolver
	log     *slog.Logger
}

// NewHandler creates the entity resource handler. A nil log discards output.
func NewHandler(service entity.Service, tenants TenantResolver, log *slog.Logger) *Handler {
	if service == nil {
		panic("entity: service is required")
	}
	if tenants == nil {
		panic("entity: tenant resolver is required")
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		service: service,
		tenants: tenants,
		log:     log.With(logger.Component("entity")),
	}
}

// Get returns the entity with the given id.
func (h *Handler) Get(ctx handler.Context, caller Caller, id string) handler.Response {
	t, resp := h.scope(ctx, caller)
	if resp != nil {
		return resp
	}

	e, err := h.service.Get(ctx, t.ID, id)
	if err != nil {
		return h.failure(ctx, "get", id, err)
	}
	return handler.Success(e)
}

// Update applies a partial update read from raw. The body is only parsed
// once the caller and tenant are known.
func (h *Handler) Update(ctx handler.Context, caller Caller, id string, raw []byte) handler.Response {
	t, resp := h.scope(ctx, caller)
	if resp != nil {
		return resp
	}

	var in entity.UpdateInput
	if err := binder.DecodeJSON(raw, &in); err != nil {
		return handler.Error(http.StatusBadRequest, msgValidation, decodeDetails(err)...)
	}
	if err := in.Normalize().Validate(); err != nil {
		return handler.Error(http.StatusBadRequest, msgValidation, validationDetails(err)...)
	}

	e, err := h.service.Update(ctx, t.ID, id, caller.UserID, in)
	if err != nil {
		return h.failure(ctx, "update", id, err)
	}

	h.log.InfoContext(ctx, "entity updated",
		logger.EntityID(e.ID),
		logger.UserID(caller.UserID),
	)
	return handler.Success(e)
}

// Delete archives the entity, or removes it when permanent is set.
func (h *Handler) Delete(ctx handler.Context, caller Caller, id string, permanent bool) handler.Response {
	t, resp := h.scope(ctx, caller)
	if resp != nil {
		return resp
	}

	var (
		err error
		msg string
	)
	if permanent {
		err = h.service.Delete(ctx, t.ID, id, caller.UserID)
		msg = msgEntityDeleted
	} else {
		err = h.service.Archive(ctx, t.ID, id, caller.UserID)
		msg = msgEntityArchived
	}
	if err != nil {
		return h.failure(ctx, "delete", id, err)
	}

	h.log.InfoContext(ctx, "entity removed",
		logger.EntityID(id),
		logger.UserID(caller.UserID),
		slog.Bool("permanent", permanent),
	)
	return handler.Message(msg)
}

// scope authenticates the caller and resolves the tenant. A non-nil response
// ends the request.
func (h *Handler) scope(ctx handler.Context, caller Caller) (*tenant.Tenant, handler.Response) {
	if !caller.Authenticated() {
		return nil, handler.Error(http.StatusUnauthorized, msgUnauthorized)
	}

	t, err := h.tenants.Resolve(ctx, ctx.Request())
	if err != nil {
		if tenant.IsNotFound(err) {
			return nil, handler.Error(http.StatusNotFound, msgNotFound)
		}
		h.log.ErrorContext(ctx, "tenant resolution failed",
			logger.Error(err),
			logger.UserID(caller.UserID),
		)
		return nil, handler.Error(http.StatusInternalServerError, msgInternal)
	}
	return t, nil
}

// failure maps a domain error to a response. Only internal errors are logged;
// their text never reaches the client.
func (h *Handler) failure(ctx context.Context, op, id string, err error) handler.Response {
	switch entity.KindOf(err) {
	case entity.KindNotFound, entity.KindUnauthorized:
		return handler.Error(http.StatusNotFound, msgNotFound)
	case entity.KindInvalid:
		return handler.Error(http.StatusBadRequest, msgValidation, validationDetails(err)...)
	case entity.KindConflict:
		return handler.Error(http.StatusConflict, conflictMessage(err))
	default:
		h.log.ErrorContext(ctx, "entity "+op+" failed",
			logger.Error(err),
			logger.EntityID(id),
		)
		return handler.Error(http.StatusInternalServerError, msgInternal)
	}
}

func conflictMessage(err error) string {
	var domainErr *entity.Error
	if errors.As(err, &domainErr) && domainErr.Err != nil {
		return domainErr.Err.Error()
	}
	return http.StatusText(http.StatusConflict)
}

func validationDetails(err error) []handler.FieldDetail {
	verrs := validator.ExtractValidationErrors(err)
	details := make([]handler.FieldDetail, 0, len(verrs))
	for _, v := range verrs {
		details = append(details, handler.FieldDetail{Field: v.Field, Message: v.Message, Code: v.Code})
	}
	return details
}

func decodeDetails(err error) []handler.FieldDetail {
	var typeErr *binder.FieldTypeError
	if errors.As(err, &typeErr) {
		return []handler.FieldDetail{{
			Field:   typeErr.Field,
			Message: "expected " + typeErr.Expected + ", received " + typeErr.Got,
			Code:    validator.CodeInvalidType,
		}}
	}

	detail := handler.FieldDetail{Field: bodyField, Code: validator.CodeInvalidType}
	switch {
	case errors.Is(err, binder.ErrEmptyBody):
		detail.Message = "request body is required"
		detail.Code = validator.CodeRequired
	case errors.Is(err, binder.ErrNotObject):
		detail.Message = "expected object"
	case errors.Is(err, binder.ErrInvalidUTF8):
		detail.Message = "body must be valid UTF-8"
		detail.Code = validator.CodeInvalidValue
	case errors.Is(err, binder.ErrBodyRead):
		detail.Message = "request body could not be read"
		detail.Code = validator.CodeInvalidValue
	default:
		detail.Message = "malformed JSON"
		detail.Code = validator.CodeInvalidValue
	}
	return []handler.FieldDetail{detail}
}
