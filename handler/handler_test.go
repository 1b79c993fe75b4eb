package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/handler"
)

type idRequest struct {
	ID string
}

func bindID(r *http.Request, v any) error {
	req := v.(*idRequest)
	req.ID = r.URL.Query().Get("id")
	if req.ID == "bad" {
		return errors.New("bad id")
	}
	return nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := func(ctx handler.Context, req idRequest) handler.Response {
		return handler.Success(map[string]string{"id": req.ID})
	}

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(echo, handler.WithBinders[handler.Context, idRequest](bindID))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?id=42", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, map[string]any{"id": "42"}, body["data"])
	})

	t.Run("binder failure is a bad request", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(echo, handler.WithBinders[handler.Context, idRequest](bindID))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?id=bad", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"error": "Bad Request"}, decodeEnvelope(t, rec))
	})

	t.Run("nil response goes to error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			func(handler.Context, idRequest) handler.Response { return nil },
			handler.WithErrorHandler[handler.Context, idRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, handler.ErrNilResponse)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   handler.Response
		status int
		body   string
	}{
		{
			name:   "success",
			resp:   handler.Success(map[string]int{"n": 1}),
			status: http.StatusOK,
			body:   `{"success":true,"data":{"n":1}}`,
		},
		{
			name:   "message",
			resp:   handler.Message("Entity archived"),
			status: http.StatusOK,
			body:   `{"success":true,"message":"Entity archived"}`,
		},
		{
			name:   "error without details",
			resp:   handler.Error(http.StatusUnauthorized, "Unauthorized"),
			status: http.StatusUnauthorized,
			body:   `{"error":"Unauthorized"}`,
		},
		{
			name: "error with details",
			resp: handler.Error(http.StatusBadRequest, "Validation error",
				handler.FieldDetail{Field: "name", Message: "too short", Code: "too_small"}),
			status: http.StatusBadRequest,
			body:   `{"error":"Validation error","details":[{"field":"name","message":"too short","code":"too_small"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			require.NoError(t, tt.resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestFallbacks(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handler.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	handler.MethodNotAllowed(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	t.Run("http error keeps its code", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		ctx := handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		handler.WriteError(ctx, errors.Join(handler.ErrBadRequest, errors.New("bad id")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Bad Request"}`, rec.Body.String())
	})

	t.Run("other errors are internal", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		ctx := handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		handler.WriteError(ctx, errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	var target handler.HTTPError
	require.ErrorAs(t, errors.Join(handler.ErrBadRequest, errors.New("x")), &target)
	assert.Equal(t, "bad_request", target.Error())
}
