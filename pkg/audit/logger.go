package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContextExtractor pulls a value out of the request context.
type ContextExtractor func(context.Context) (string, bool)

// Storage persists audit events.
type Storage interface {
	Store(ctx context.Context, events ...Event) error
}

// Logger builds events from the context and hands them to Storage.
type Logger struct {
	storage            Storage
	tenantIDExtractor  ContextExtractor
	userIDExtractor    ContextExtractor
	requestIDExtractor ContextExtractor
	ipExtractor        ContextExtractor
	now                func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

func WithTenantIDExtractor(fn ContextExtractor) Option {
	return func(l *Logger) { l.tenantIDExtractor = fn }
}

func WithUserIDExtractor(fn ContextExtractor) Option {
	return func(l *Logger) { l.userIDExtractor = fn }
}

func WithRequestIDExtractor(fn ContextExtractor) Option {
	return func(l *Logger) { l.requestIDExtractor = fn }
}

func WithIPExtractor(fn ContextExtractor) Option {
	return func(l *Logger) { l.ipExtractor = fn }
}

func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

func NewLogger(storage Storage, opts ...Option) *Logger {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}
	l := &Logger{storage: storage, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log records a successful action.
func (l *Logger) Log(ctx context.Context, action string, opts ...EventOption) error {
	return l.store(ctx, action, nil, opts)
}

// LogError records a failed action together with the failure reason.
func (l *Logger) LogError(ctx context.Context, action string, err error, opts ...EventOption) error {
	return l.store(ctx, action, err, opts)
}

func (l *Logger) store(ctx context.Context, action string, cause error, opts []EventOption) error {
	event := l.eventFromContext(ctx)
	event.ID = uuid.NewString()
	event.Action = action
	event.Result = ResultSuccess
	event.CreatedAt = l.now().UTC()
	if cause != nil {
		event.Result = ResultFailure
		event.Error = cause.Error()
	}

	for _, opt := range opts {
		opt(&event)
	}

	if err := event.Validate(); err != nil {
		return err
	}
	if err := l.storage.Store(ctx, event); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (l *Logger) eventFromContext(ctx context.Context) Event {
	var event Event
	extract := func(fn ContextExtractor, dst *string) {
		if fn == nil {
			return
		}
		if v, ok := fn(ctx); ok {
			*dst = v
		}
	}
	extract(l.tenantIDExtractor, &event.TenantID)
	extract(l.userIDExtractor, &event.UserID)
	extract(l.requestIDExtractor, &event.RequestID)
	extract(l.ipExtractor, &event.IP)
	return event
}
