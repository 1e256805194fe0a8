package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

type mockReporter struct {
	mock.Mock
}

func (m *mockReporter) CurrentMonthExpenses() decimal.Decimal {
	return m.Called().Get(0).(decimal.Decimal)
}

func (m *mockReporter) CurrentMonthIncome() decimal.Decimal {
	return m.Called().Get(0).(decimal.Decimal)
}

func (m *mockReporter) MonthlyData(month time.Month, year int) (service.MonthlyData, error) {
	args := m.Called(month, year)
	return args.Get(0).(service.MonthlyData), args.Error(1)
}

func (m *mockReporter) Dashboard() service.Dashboard {
	return m.Called().Get(0).(service.Dashboard)
}

func (m *mockReporter) BudgetStatus() service.BudgetStatus {
	return m.Called().Get(0).(service.BudgetStatus)
}

func (m *mockReporter) PlannedSummary() service.PlannedSummary {
	return m.Called().Get(0).(service.PlannedSummary)
}

func newTestAPI(t *testing.T, svc reporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_CurrentMonth(t *testing.T) {
	mockSvc := new(mockReporter)
	mockSvc.On("CurrentMonthIncome").Return(decimal.RequireFromString("1200.50"))
	mockSvc.On("CurrentMonthExpenses").Return(decimal.RequireFromString("310"))

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/current-month")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CurrentMonthBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1200.5", body.Income)
	assert.Equal(t, "310", body.Expenses)
}

func TestHTTP_MonthlyData(t *testing.T) {
	mockSvc := new(mockReporter)
	mockSvc.On("MonthlyData", time.March, 2025).Return(service.MonthlyData{
		Month:         "March",
		Year:          2025,
		TotalIncome:   decimal.NewFromInt(500),
		TotalExpenses: decimal.RequireFromString("42.1"),
		Transactions: transaction.List{
			{ID: "early", Amount: decimal.NewFromInt(1), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Type: transaction.TypeExpense},
			{ID: "late", Amount: decimal.NewFromInt(2), Date: time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC), Type: transaction.TypeExpense},
		},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/monthly/2025/3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlyData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "March", body.Month)
	assert.Equal(t, "42.1", body.TotalExpenses)
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "late", body.Transactions[0].ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthlyData_MonthOutOfRange(t *testing.T) {
	mockSvc := new(mockReporter)

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/monthly/2025/13")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "MonthlyData")
}

func TestHTTP_MonthlyData_ServiceError(t *testing.T) {
	mockSvc := new(mockReporter)
	mockSvc.On("MonthlyData", time.May, 2025).Return(service.MonthlyData{}, errors.New("boom"))

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/monthly/2025/5")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_Dashboard(t *testing.T) {
	mockSvc := new(mockReporter)
	mockSvc.On("Dashboard").Return(service.Dashboard{
		TotalBalance:      decimal.NewFromInt(1050),
		Currency:          "EUR",
		CurrencySymbol:    "€",
		BudgetUsedPercent: decimal.RequireFromString("37.5"),
		TopCategories: []service.CategoryTotal{
			{Category: category.Category{ID: "2", Name: "Shopping"}, Total: decimal.NewFromInt(50)},
		},
		RecentTransactions: transaction.List{{ID: "r1", Amount: decimal.NewFromInt(3), Type: transaction.TypeIncome}},
		PlannedCount:       2,
	})

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/dashboard")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1050", body.TotalBalance)
	assert.Equal(t, "€", body.CurrencySymbol)
	assert.Equal(t, "37.50", body.BudgetUsedPercent)
	require.Len(t, body.TopCategories, 1)
	assert.Equal(t, "Shopping", body.TopCategories[0].Name)
	assert.Equal(t, "50", body.TopCategories[0].Total)
	require.Len(t, body.RecentTransactions, 1)
	assert.Equal(t, 2, body.PlannedCount)
}

func TestHTTP_BudgetStatus(t *testing.T) {
	mockSvc := new(mockReporter)
	mockSvc.On("BudgetStatus").Return(service.BudgetStatus{
		State:       service.BudgetStateOverBudget,
		Spent:       decimal.NewFromInt(120),
		Budget:      decimal.NewFromInt(100),
		Remaining:   decimal.NewFromInt(-20),
		UsedPercent: decimal.NewFromInt(120),
		Threshold:   80,
	})

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/budget-status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BudgetStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "over_budget", body.State)
	assert.Equal(t, "Over Budget!", body.Label)
	assert.Equal(t, "-20", body.Remaining)
}

func TestHTTP_PlannedSummary(t *testing.T) {
	mockSvc := new(mockReporter)
	mockSvc.On("PlannedSummary").Return(service.PlannedSummary{
		Upcoming:         transaction.List{{ID: "u1", Amount: decimal.NewFromInt(300), Type: transaction.TypeIncome, IsPlanned: true}},
		Past:             transaction.List{},
		UpcomingIncome:   decimal.NewFromInt(300),
		UpcomingExpenses: decimal.Zero,
		Net:              decimal.NewFromInt(300),
	})

	resp := newTestAPI(t, mockSvc).Get("/v1/reports/planned")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PlannedSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Upcoming, 1)
	assert.Empty(t, body.Past)
	assert.Equal(t, "300", body.Net)
}
