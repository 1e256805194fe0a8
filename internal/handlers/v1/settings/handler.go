package settings

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
)

type Settings struct {
	Currency               string   `json:"currency"`
	CurrencySymbol         string   `json:"currencySymbol"`
	Notifications          bool     `json:"notifications" doc:"Whether budget warnings are raised"`
	BudgetWarningThreshold int      `json:"budgetWarningThreshold" doc:"Percent of the monthly budget that raises a warning"`
	SupportedCurrencies    []string `json:"supportedCurrencies"`
}

type SaveSettingsBody struct {
	Currency               string `json:"currency" required:"true" enum:"EUR,GBP,INR,JPY,USD"`
	Notifications          bool   `json:"notifications" required:"true"`
	BudgetWarningThreshold int    `json:"budgetWarningThreshold" required:"true" minimum:"0" maximum:"100"`
}

type SaveSettingsInput struct {
	Body SaveSettingsBody
}

type UpdateSettingsBody struct {
	Currency               *string `json:"currency,omitempty" required:"false" enum:"EUR,GBP,INR,JPY,USD"`
	Notifications          *bool   `json:"notifications,omitempty" required:"false"`
	BudgetWarningThreshold *int    `json:"budgetWarningThreshold,omitempty" required:"false" minimum:"0" maximum:"100"`
}

type UpdateSettingsInput struct {
	Body UpdateSettingsBody
}

type SettingsOutput struct {
	Body Settings
}

type settingsService interface {
	Settings() settings.Settings
	SaveSettings(ctx context.Context, st settings.Settings) error
	UpdateSettings(ctx context.Context, update service.SettingsUpdate) (settings.Settings, error)
}

// Handler serves GET, PUT and PATCH on /v1/settings.
type Handler struct {
	SettingsService settingsService
}

func NewHandler(svc settingsService) *Handler {
	return &Handler{SettingsService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings",
		Summary:     "Get settings",
		Tags:        []string{"Settings"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "save-settings",
		Method:      http.MethodPut,
		Path:        "/v1/settings",
		Summary:     "Replace settings",
		Tags:        []string{"Settings"},
	}, h.handleSave)

	huma.Register(api, huma.Operation{
		OperationID: "update-settings",
		Method:      http.MethodPatch,
		Path:        "/v1/settings",
		Summary:     "Update settings",
		Description: "Changes only the fields present in the body.",
		Tags:        []string{"Settings"},
	}, h.handleUpdate)
}

func (h *Handler) handleGet(ctx context.Context, _ *struct{}) (*SettingsOutput, error) {
	return &SettingsOutput{Body: fromModel(h.SettingsService.Settings())}, nil
}

func (h *Handler) handleSave(ctx context.Context, input *SaveSettingsInput) (*SettingsOutput, error) {
	st := settings.Settings{
		Currency:               input.Body.Currency,
		Notifications:          input.Body.Notifications,
		BudgetWarningThreshold: input.Body.BudgetWarningThreshold,
	}
	if err := h.SettingsService.SaveSettings(ctx, st); err != nil {
		return nil, handlers.ServiceError("failed to save settings", err)
	}
	return &SettingsOutput{Body: fromModel(st)}, nil
}

func (h *Handler) handleUpdate(ctx context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	var update service.SettingsUpdate
	if input.Body.Currency != nil {
		update.Currency = omit.From(*input.Body.Currency)
	}
	if input.Body.Notifications != nil {
		update.Notifications = omit.From(*input.Body.Notifications)
	}
	if input.Body.BudgetWarningThreshold != nil {
		update.BudgetWarningThreshold = omit.From(*input.Body.BudgetWarningThreshold)
	}

	updated, err := h.SettingsService.UpdateSettings(ctx, update)
	if err != nil {
		return nil, handlers.ServiceError("failed to update settings", err)
	}
	return &SettingsOutput{Body: fromModel(updated)}, nil
}

func fromModel(st settings.Settings) Settings {
	return Settings{
		Currency:               st.Currency,
		CurrencySymbol:         settings.Symbol(st.Currency),
		Notifications:          st.Notifications,
		BudgetWarningThreshold: st.BudgetWarningThreshold,
		SupportedCurrencies:    settings.SupportedCurrencies(),
	}
}
