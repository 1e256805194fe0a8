package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Icon             string  `json:"icon" doc:"Symbolic icon name"`
	Color            string  `json:"color"`
	Budget           *string `json:"budget,omitempty" doc:"Decimal per-category budget"`
	IsIncomeCategory bool    `json:"isIncomeCategory" doc:"Income transactions must use an income category"`
}

type CategoryOverview struct {
	Category
	MonthSpent      string  `json:"monthSpent"`
	MonthReceived   string  `json:"monthReceived"`
	BudgetRemaining *string `json:"budgetRemaining,omitempty"`
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories"`
	}
}

type CategoryOverviewOutput struct {
	Body struct {
		Categories []CategoryOverview `json:"categories"`
	}
}

type categoryReader interface {
	Categories() category.List
	Overview() []service.CategoryOverview
}

type Handler struct {
	CategoryService categoryReader
}

func NewHandler(svc categoryReader) *Handler {
	return &Handler{CategoryService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "category-overview",
		Method:      http.MethodGet,
		Path:        "/v1/categories/overview",
		Summary:     "Category overview",
		Description: "Returns every category with its current-month spending.",
		Tags:        []string{"Categories"},
	}, h.handleOverview)
}

func (h *Handler) handleList(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories := h.CategoryService.Categories()

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = fromModel(c)
	}
	return out, nil
}

func (h *Handler) handleOverview(ctx context.Context, _ *struct{}) (*CategoryOverviewOutput, error) {
	overview := h.CategoryService.Overview()

	out := &CategoryOverviewOutput{}
	out.Body.Categories = make([]CategoryOverview, len(overview))
	for i, o := range overview {
		item := CategoryOverview{
			Category:      fromModel(o.Category),
			MonthSpent:    o.MonthSpent.String(),
			MonthReceived: o.MonthReceived.String(),
		}
		if o.BudgetRemaining != nil {
			remaining := o.BudgetRemaining.String()
			item.BudgetRemaining = &remaining
		}
		out.Body.Categories[i] = item
	}
	return out, nil
}

func fromModel(c category.Category) Category {
	out := Category{
		ID:               c.ID,
		Name:             c.Name,
		Icon:             c.Icon,
		Color:            c.Color,
		IsIncomeCategory: c.IsIncomeCategory,
	}
	if c.Budget != nil {
		budget := c.Budget.String()
		out.Budget = &budget
	}
	return out
}
