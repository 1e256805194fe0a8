package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/apperrors"
	"github.com/carson-networks/budget-tracker/internal/notify"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

type mockTransactionCreator struct {
	mock.Mock
}

func (m *mockTransactionCreator) AddTransaction(ctx context.Context, draft service.TransactionDraft) (*service.AddTransactionResult, error) {
	args := m.Called(ctx, draft)
	result, _ := args.Get(0).(*service.AddTransactionResult)
	return result, args.Error(1)
}

func newCreateTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func storedTransaction(id string) transaction.Transaction {
	return transaction.Transaction{
		ID:          id,
		Amount:      decimal.RequireFromString("12.50"),
		Category:    "1",
		Description: "Coffee",
		Date:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Type:        transaction.TypeExpense,
	}
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount:      "123.45",
			Category:    "9",
			Description: "Salary",
			Date:        "2025-01-15T10:30:00Z",
			Type:        "income",
			IsPlanned:   true,
		},
	}

	draft, err := parseCreateTransactionInput(input)
	require.NoError(t, err)
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, "9", draft.Category)
	assert.Equal(t, "Salary", draft.Description)
	assert.Equal(t, transaction.TypeIncome, draft.Type)
	assert.True(t, draft.IsPlanned)
	assert.True(t, draft.Date.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))
}

func TestParseCreateTransactionInput_WithoutDate(t *testing.T) {
	draft, err := parseCreateTransactionInput(&CreateTransactionInput{
		Body: CreateTransactionBody{Amount: "5", Category: "1", Description: "Bus", Type: "expense"},
	})
	require.NoError(t, err)
	assert.True(t, draft.Date.IsZero())
}

func TestParseCreateTransactionInput_InvalidAmount(t *testing.T) {
	_, err := parseCreateTransactionInput(&CreateTransactionInput{
		Body: CreateTransactionBody{Amount: "twelve", Category: "1", Description: "Bus", Type: "expense"},
	})
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("AddTransaction", mock.Anything, mock.MatchedBy(func(d service.TransactionDraft) bool {
		return d.Amount.Equal(decimal.RequireFromString("12.50")) &&
			d.Category == "1" &&
			d.Description == "Coffee" &&
			d.Type == transaction.TypeExpense &&
			!d.IsPlanned
	})).Return(&service.AddTransactionResult{Transaction: storedTransaction("tx-1")}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Amount:      "12.50",
		Category:    "1",
		Description: "Coffee",
		Type:        "expense",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tx-1", body.Transaction.ID)
	assert.Equal(t, "12.5", body.Transaction.Amount)
	assert.Equal(t, "2025-06-01T12:00:00Z", body.Transaction.Date)
	assert.Nil(t, body.BudgetWarning)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ReturnsBudgetWarning(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("AddTransaction", mock.Anything, mock.Anything).Return(&service.AddTransactionResult{
		Transaction: storedTransaction("tx-2"),
		Warning: &notify.BudgetWarning{
			TransactionID: "tx-2",
			Percent:       decimal.NewFromInt(90),
			Spent:         decimal.NewFromInt(90),
			Budget:        decimal.NewFromInt(100),
			Threshold:     80,
			Message:       notify.WarningMessage(decimal.NewFromInt(90)),
		},
	}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Amount:      "45",
		Category:    "1",
		Description: "Groceries",
		Type:        "expense",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.BudgetWarning)
	assert.Equal(t, "You've used 90% of your monthly budget!", body.BudgetWarning.Message)
	assert.Equal(t, "90.00", body.BudgetWarning.Percent)
	assert.Equal(t, 80, body.BudgetWarning.Threshold)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", map[string]any{
		"amount": "10",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "AddTransaction")
}

func TestHTTP_CreateTransaction_UnknownType(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Amount:      "10",
		Category:    "1",
		Description: "Refund",
		Type:        "transfer",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "AddTransaction")
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// Huma's format:"date-time" schema validation rejects this before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Amount:      "10",
		Category:    "1",
		Description: "Test",
		Type:        "expense",
		Date:        "not-a-date",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "AddTransaction")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// Amount is a plain string, so parseCreateTransactionInput rejects it with a 400.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Amount:      "not-a-decimal",
		Category:    "1",
		Description: "Test",
		Type:        "expense",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "AddTransaction")
}

func TestHTTP_CreateTransaction_ValidationError(t *testing.T) {
	vErr := apperrors.NewValidationError()
	vErr.Add("amount", apperrors.ErrInvalidAmount)

	mockSvc := new(mockTransactionCreator)
	mockSvc.On("AddTransaction", mock.Anything, mock.Anything).Return(nil, vErr)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Amount:      "-3",
		Category:    "1",
		Description: "Test",
		Type:        "expense",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var body huma.ErrorModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "body.amount", body.Errors[0].Location)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("AddTransaction", mock.Anything, mock.Anything).
		Return(nil, errors.New("persist ledger: disk full"))

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Amount:      "10.00",
		Category:    "1",
		Description: "Test",
		Type:        "expense",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
