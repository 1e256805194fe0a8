package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/handlers"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

type CurrentMonthBody struct {
	Income   string `json:"income" doc:"Decimal non-planned income this month"`
	Expenses string `json:"expenses" doc:"Decimal non-planned expenses this month"`
}

type CurrentMonthOutput struct {
	Body CurrentMonthBody
}

type MonthlyDataInput struct {
	Year  int `path:"year" minimum:"1" maximum:"9999"`
	Month int `path:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1 is January"`
}

type MonthlyDataOutput struct {
	Body MonthlyData
}

type DashboardOutput struct {
	Body Dashboard
}

type BudgetStatusOutput struct {
	Body BudgetStatus
}

type PlannedSummaryOutput struct {
	Body PlannedSummary
}

// reporter is the interface for ledger aggregates.
type reporter interface {
	CurrentMonthExpenses() decimal.Decimal
	CurrentMonthIncome() decimal.Decimal
	MonthlyData(month time.Month, year int) (service.MonthlyData, error)
	Dashboard() service.Dashboard
	BudgetStatus() service.BudgetStatus
	PlannedSummary() service.PlannedSummary
}

// Handler serves the read-only reports under /v1/reports.
type Handler struct {
	ReportService reporter
}

func NewHandler(svc reporter) *Handler {
	return &Handler{ReportService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "current-month-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/current-month",
		Summary:     "Current month totals",
		Tags:        []string{"Reports"},
	}, h.handleCurrentMonth)

	huma.Register(api, huma.Operation{
		OperationID: "monthly-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/monthly/{year}/{month}",
		Summary:     "Monthly data",
		Description: "Returns the non-planned transactions of a calendar month with income and expense totals.",
		Tags:        []string{"Reports"},
	}, h.handleMonthly)

	huma.Register(api, huma.Operation{
		OperationID: "dashboard-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/dashboard",
		Summary:     "Dashboard",
		Tags:        []string{"Reports"},
	}, h.handleDashboard)

	huma.Register(api, huma.Operation{
		OperationID: "budget-status-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/budget-status",
		Summary:     "Budget status",
		Tags:        []string{"Reports"},
	}, h.handleBudgetStatus)

	huma.Register(api, huma.Operation{
		OperationID: "planned-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/planned",
		Summary:     "Planned transactions summary",
		Tags:        []string{"Reports"},
	}, h.handlePlanned)
}

func (h *Handler) handleCurrentMonth(ctx context.Context, _ *struct{}) (*CurrentMonthOutput, error) {
	return &CurrentMonthOutput{
		Body: CurrentMonthBody{
			Income:   h.ReportService.CurrentMonthIncome().String(),
			Expenses: h.ReportService.CurrentMonthExpenses().String(),
		},
	}, nil
}

func (h *Handler) handleMonthly(ctx context.Context, input *MonthlyDataInput) (*MonthlyDataOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("year", input.Year)
	logData.AddData("month", input.Month)

	data, err := h.ReportService.MonthlyData(time.Month(input.Month), input.Year)
	if err != nil {
		return nil, handlers.ServiceError("failed to build monthly data", err)
	}

	logData.AddData("transactionCount", len(data.Transactions))
	return &MonthlyDataOutput{Body: fromMonthlyData(data)}, nil
}

func (h *Handler) handleDashboard(ctx context.Context, _ *struct{}) (*DashboardOutput, error) {
	return &DashboardOutput{Body: fromDashboard(h.ReportService.Dashboard())}, nil
}

func (h *Handler) handleBudgetStatus(ctx context.Context, _ *struct{}) (*BudgetStatusOutput, error) {
	return &BudgetStatusOutput{Body: fromBudgetStatus(h.ReportService.BudgetStatus())}, nil
}

func (h *Handler) handlePlanned(ctx context.Context, _ *struct{}) (*PlannedSummaryOutput, error) {
	return &PlannedSummaryOutput{Body: fromPlannedSummary(h.ReportService.PlannedSummary())}, nil
}
