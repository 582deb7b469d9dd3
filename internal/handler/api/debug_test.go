package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmrapid/portal/internal/repository"
)

type fakeDebugStore struct {
	total     int64
	byInvoice int64
	opens     []repository.EmailOpen
	created   []repository.CreateEmailOpenParams
}

func (s *fakeDebugStore) CountEmailOpens(context.Context) (int64, error) {
	return s.total, nil
}

func (s *fakeDebugStore) CountEmailOpensForInvoice(context.Context, pgtype.UUID) (int64, error) {
	return s.byInvoice, nil
}

func (s *fakeDebugStore) ListEmailOpensForInvoice(context.Context, pgtype.UUID) ([]repository.EmailOpen, error) {
	return s.opens, nil
}

func (s *fakeDebugStore) CreateEmailOpen(_ context.Context, arg repository.CreateEmailOpenParams) (repository.EmailOpen, error) {
	s.created = append(s.created, arg)
	return repository.EmailOpen{InvoiceID: arg.InvoiceID, CustomerID: arg.CustomerID, UserAgent: arg.UserAgent}, nil
}

func TestDebugHandlerCheckTracking(t *testing.T) {
	h := NewDebugHandler(&fakeDebugStore{total: 7, byInvoice: 3})

	rec := httptest.NewRecorder()
	h.Tracking(rec, httptest.NewRequest(http.MethodGet,
		"/debug-email-tracking?action=check_tracking&invoice_id=11111111-1111-1111-1111-111111111111", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(7), resp["total_opens"])
	assert.Equal(t, float64(3), resp["invoice_opens"])
}

func TestDebugHandlerTestTracking(t *testing.T) {
	store := &fakeDebugStore{}
	h := NewDebugHandler(store)

	rec := httptest.NewRecorder()
	h.Tracking(rec, httptest.NewRequest(http.MethodGet,
		"/debug-email-tracking?action=test_tracking&invoice_id=11111111-1111-1111-1111-111111111111&customer_id=22222222-2222-2222-2222-222222222222", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, "debug-email-tracking", store.created[0].UserAgent.String)
}

func TestDebugHandlerTestTrackingRequiresIDs(t *testing.T) {
	h := NewDebugHandler(&fakeDebugStore{})

	rec := httptest.NewRecorder()
	h.Tracking(rec, httptest.NewRequest(http.MethodGet, "/debug-email-tracking?action=test_tracking", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invoice_id")
}

func TestDebugHandlerUnknownAction(t *testing.T) {
	h := NewDebugHandler(&fakeDebugStore{})

	rec := httptest.NewRecorder()
	h.Tracking(rec, httptest.NewRequest(http.MethodGet, "/debug-email-tracking?action=drop_tables", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDebugHandlerFixPolicies(t *testing.T) {
	h := NewDebugHandler(&fakeDebugStore{})

	rec := httptest.NewRecorder()
	h.Tracking(rec, httptest.NewRequest(http.MethodGet, "/debug-email-tracking?action=fix_policies", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}
