package entity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/handler"
	domain "github.com/dmitrymomot/entitykit/svc/entity"
	"github.com/dmitrymomot/entitykit/svc/tenant"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, tenantID uuid.UUID, callerID string, in domain.CreateInput) (*domain.Entity, error) {
	args := m.Called(ctx, tenantID, callerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, tenantID uuid.UUID, id string) (*domain.Entity, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, tenantID uuid.UUID, id, callerID string, in domain.UpdateInput) (*domain.Entity, error) {
	args := m.Called(ctx, tenantID, id, callerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *mockService) Archive(ctx context.Context, tenantID uuid.UUID, id, callerID string) error {
	return m.Called(ctx, tenantID, id, callerID).Error(0)
}

func (m *mockService) Delete(ctx context.Context, tenantID uuid.UUID, id, callerID string) error {
	return m.Called(ctx, tenantID, id, callerID).Error(0)
}

type mockTenants struct {
	mock.Mock
}

func (m *mockTenants) Resolve(ctx context.Context, r *http.Request) (*tenant.Tenant, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

type response struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Message string                `json:"message"`
	Error   string                `json:"error"`
	Details []handler.FieldDetail `json:"details"`
}

func render(t *testing.T, resp handler.Response) (int, response) {
	t.Helper()
	require.NotNil(t, resp)

	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

	var body response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func testContext(method, target, body string) handler.Context {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	return handler.NewContext(httptest.NewRecorder(), r)
}

func activeTenant() *tenant.Tenant {
	return &tenant.Tenant{ID: uuid.New(), Subdomain: "acme", Name: "Acme", Active: true}
}

func sampleEntity(tenantID uuid.UUID) *domain.Entity {
	return &domain.Entity{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Name:         "Acme Holdings",
		LegalForm:    "LLC",
		Status:       domain.StatusActive,
		ActivityCode: "62.01",
	}
}

func jsonUnmarshal(raw []byte, v any) error { return json.Unmarshal(raw, v) }
