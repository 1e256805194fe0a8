package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/notify"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()

	store := storage.New(memory.NewStore(), "budget_", logger)
	d := operator.NewOperatorDelegator(store, 1, logger)
	d.Start()
	t.Cleanup(d.Stop)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	svc := service.NewService(store, d, notify.NewLogNotifier(logger), service.Options{
		Now:    func() time.Time { return now },
		Logger: logger,
	})

	rest := &Rest{Logger: logger, Service: svc, AllowedOrigins: []string{"*"}}
	return rest.Router()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Status(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_LedgerRoundTrip(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPut, "/v1/wallet", map[string]string{
		"totalBalance": "100", "monthlyBudget": "200", "currency": "USD",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodPost, "/v1/transaction", map[string]any{
		"amount": "30", "category": "1", "description": "Groceries", "type": "expense",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Transaction struct {
			ID string `json:"id"`
		} `json:"transaction"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	w = do(t, h, http.MethodGet, "/v1/wallet", nil)
	var wallet struct {
		TotalBalance string `json:"totalBalance"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&wallet))
	assert.Equal(t, "70", wallet.TotalBalance)

	w = do(t, h, http.MethodDelete, "/v1/transaction/"+created.Transaction.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/v1/reports/current-month", nil)
	var month struct {
		Expenses string `json:"expenses"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&month))
	assert.Equal(t, "0", month.Expenses)
}

func TestRouter_IncomeNeedsIncomeCategory(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/v1/transaction", map[string]any{
		"amount": "50", "category": "1", "description": "Salary", "type": "income",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
