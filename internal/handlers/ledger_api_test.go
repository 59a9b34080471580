package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/core/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/handlers"
	"github.com/SscSPs/general_ledger/internal/platform/config"
	"github.com/SscSPs/general_ledger/internal/repositories/database/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLedgerAPI serves the full route table over the in-memory store without authentication.
func newLedgerAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accounts := memory.NewChartOfAccountStore(
		domain.ChartOfAccount{TenantID: "acme", AccountID: "cash", AccountCode: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true},
		domain.ChartOfAccount{TenantID: "acme", AccountID: "sales", AccountCode: "4000", Name: "Sales", AccountType: domain.Revenue, IsActive: true},
		domain.ChartOfAccount{TenantID: "acme", AccountID: "legacy", AccountCode: "1900", Name: "Legacy", AccountType: domain.Asset, IsActive: false},
	)
	container := services.NewServiceContainer(memory.NewRepositoryProvider(accounts))

	r := gin.New()
	require.NoError(t, handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, container))
	return r
}

func call(t *testing.T, r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handlers.TenantHeader, "acme")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createEntry(t *testing.T, r *gin.Engine, lines ...map[string]any) dto.JournalEntryResponse {
	t.Helper()
	w := call(t, r, http.MethodPost, "/api/v1/journal-entries", map[string]any{
		"tenantId":  "acme",
		"entryDate": time.Now().UTC().Format(domain.DateLayout),
		"lines":     lines,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.JournalEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func setStatus(t *testing.T, r *gin.Engine, id string, status domain.JournalStatus) *httptest.ResponseRecorder {
	t.Helper()
	return call(t, r, http.MethodPut, "/api/v1/journal-entries/"+id, map[string]any{"status": status})
}

func errorKind(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func balanceOf(t *testing.T, r *gin.Engine, accountID string) string {
	t.Helper()
	w := call(t, r, http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.AccountBalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Balance
}

func TestLedgerAPI_PostBalancedEntry(t *testing.T) {
	r := newLedgerAPI(t)
	entry := createEntry(t, r,
		map[string]any{"chartOfAccountId": "cash", "debit": 100, "credit": 0},
		map[string]any{"chartOfAccountId": "sales", "debit": 0, "credit": 100},
	)
	assert.Equal(t, domain.Draft, entry.Status)

	w := setStatus(t, r, entry.ID, domain.Posted)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var posted dto.JournalEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posted))
	assert.Equal(t, domain.Posted, posted.Status)
	assert.NotNil(t, posted.PostedDate)
	assert.Equal(t, "100.00", balanceOf(t, r, "cash"))
	assert.Equal(t, "100.00", balanceOf(t, r, "sales"))
}

func TestLedgerAPI_UnbalancedStaysDraft(t *testing.T) {
	r := newLedgerAPI(t)
	entry := createEntry(t, r,
		map[string]any{"chartOfAccountId": "cash", "debit": 150},
		map[string]any{"chartOfAccountId": "sales", "credit": 100},
	)

	w := setStatus(t, r, entry.ID, domain.Posted)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unbalanced", errorKind(t, w).Error)

	w = call(t, r, http.MethodGet, "/api/v1/journal-entries/"+entry.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored dto.JournalEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.Equal(t, domain.Draft, stored.Status)
}

func TestLedgerAPI_InactiveAccountNamedInError(t *testing.T) {
	r := newLedgerAPI(t)
	entry := createEntry(t, r,
		map[string]any{"chartOfAccountId": "legacy", "debit": 10},
		map[string]any{"chartOfAccountId": "sales", "credit": 10},
	)

	w := setStatus(t, r, entry.ID, domain.Posted)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := errorKind(t, w)
	assert.Equal(t, "AccountInactive", resp.Error)
	assert.Equal(t, "1900", resp.Details["accountCode"])
}

func TestLedgerAPI_LifecycleIsOneWay(t *testing.T) {
	r := newLedgerAPI(t)
	entry := createEntry(t, r,
		map[string]any{"chartOfAccountId": "cash", "debit": "100"},
		map[string]any{"chartOfAccountId": "sales", "credit": "100"},
	)
	require.Equal(t, http.StatusOK, setStatus(t, r, entry.ID, domain.Posted).Code)

	w := setStatus(t, r, entry.ID, domain.Posted)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidTransition", errorKind(t, w).Error)

	w = setStatus(t, r, entry.ID, domain.Reversed)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reversed dto.JournalEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reversed))
	assert.Equal(t, domain.Reversed, reversed.Status)

	for _, target := range []domain.JournalStatus{domain.Posted, domain.Draft} {
		w = setStatus(t, r, entry.ID, target)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "InvalidTransition", errorKind(t, w).Error)
	}

	w = call(t, r, http.MethodPut, "/api/v1/journal-entries/"+entry.ID, map[string]any{"description": "too late"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.Equal(t, "0.00", balanceOf(t, r, "cash"))
}

func TestLedgerAPI_CreateReportsStructuralKind(t *testing.T) {
	r := newLedgerAPI(t)

	w := call(t, r, http.MethodPost, "/api/v1/journal-entries", map[string]any{
		"tenantId":  "acme",
		"entryDate": "2024-01-31",
		"lines":     []map[string]any{{"chartOfAccountId": "cash", "debit": 1}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EmptyLines", errorKind(t, w).Error)
}

func TestLedgerAPI_RejectsOversizedAmount(t *testing.T) {
	r := newLedgerAPI(t)

	w := call(t, r, http.MethodPost, "/api/v1/journal-entries", map[string]any{
		"tenantId":  "acme",
		"entryDate": "2024-01-31",
		"lines": []map[string]any{
			{"chartOfAccountId": "cash", "debit": "1e20000000"},
			{"chartOfAccountId": "sales", "credit": "1e20000000"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "AmountOutOfRange", errorKind(t, w).Error)
}

func TestLedgerAPI_Health(t *testing.T) {
	r := newLedgerAPI(t)
	w := call(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
