package wallet

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/handlers"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
	"github.com/carson-networks/budget-tracker/internal/storage/wallet"
)

// Wallet is the API model for the wallet.
type Wallet struct {
	TotalBalance    string `json:"totalBalance" doc:"Decimal running balance"`
	MonthlyBudget   string `json:"monthlyBudget" doc:"Decimal monthly budget, zero disables budget tracking"`
	Currency        string `json:"currency" doc:"Currency code stored with the wallet"`
	DisplayCurrency string `json:"displayCurrency" doc:"Currency code from settings, used for display"`
	CurrencySymbol  string `json:"currencySymbol" doc:"Symbol of the display currency"`
}

type SaveWalletBody struct {
	TotalBalance  string `json:"totalBalance" required:"true"`
	MonthlyBudget string `json:"monthlyBudget" required:"true"`
	Currency      string `json:"currency" required:"true"`
}

type SaveWalletInput struct {
	Body SaveWalletBody
}

type UpdateWalletBody struct {
	TotalBalance  *string `json:"totalBalance,omitempty" required:"false"`
	MonthlyBudget *string `json:"monthlyBudget,omitempty" required:"false"`
	Currency      *string `json:"currency,omitempty" required:"false"`
}

type UpdateWalletInput struct {
	Body UpdateWalletBody
}

type WalletOutput struct {
	Body Wallet
}

type walletService interface {
	Wallet() wallet.Wallet
	SaveWallet(ctx context.Context, w wallet.Wallet) error
	UpdateWallet(ctx context.Context, update service.WalletUpdate) (wallet.Wallet, error)
	Settings() settings.Settings
}

// Handler serves GET, PUT and PATCH on /v1/wallet.
type Handler struct {
	WalletService walletService
}

func NewHandler(svc walletService) *Handler {
	return &Handler{WalletService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-wallet",
		Method:      http.MethodGet,
		Path:        "/v1/wallet",
		Summary:     "Get wallet",
		Tags:        []string{"Wallet"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "save-wallet",
		Method:      http.MethodPut,
		Path:        "/v1/wallet",
		Summary:     "Replace wallet",
		Description: "Overwrites the balance, budget and currency.",
		Tags:        []string{"Wallet"},
	}, h.handleSave)

	huma.Register(api, huma.Operation{
		OperationID: "update-wallet",
		Method:      http.MethodPatch,
		Path:        "/v1/wallet",
		Summary:     "Update wallet",
		Description: "Changes only the fields present in the body.",
		Tags:        []string{"Wallet"},
	}, h.handleUpdate)
}

func (h *Handler) handleGet(ctx context.Context, _ *struct{}) (*WalletOutput, error) {
	return &WalletOutput{Body: h.fromModel(h.WalletService.Wallet())}, nil
}

func (h *Handler) handleSave(ctx context.Context, input *SaveWalletInput) (*WalletOutput, error) {
	update, err := parseUpdate(UpdateWalletBody{
		TotalBalance:  &input.Body.TotalBalance,
		MonthlyBudget: &input.Body.MonthlyBudget,
		Currency:      &input.Body.Currency,
	})
	if err != nil {
		return nil, err
	}

	w := wallet.Wallet{
		TotalBalance:  update.TotalBalance.GetOrZero(),
		MonthlyBudget: update.MonthlyBudget.GetOrZero(),
		Currency:      update.Currency.GetOrZero(),
	}
	if err := h.WalletService.SaveWallet(ctx, w); err != nil {
		return nil, handlers.ServiceError("failed to save wallet", err)
	}
	return &WalletOutput{Body: h.fromModel(w)}, nil
}

func (h *Handler) handleUpdate(ctx context.Context, input *UpdateWalletInput) (*WalletOutput, error) {
	update, err := parseUpdate(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.WalletService.UpdateWallet(ctx, update)
	if err != nil {
		return nil, handlers.ServiceError("failed to update wallet", err)
	}
	return &WalletOutput{Body: h.fromModel(updated)}, nil
}

// parseUpdate converts the present body fields. Balances may be negative,
// budgets may not.
func parseUpdate(body UpdateWalletBody) (service.WalletUpdate, error) {
	var update service.WalletUpdate

	if body.TotalBalance != nil {
		balance, err := decimal.NewFromString(*body.TotalBalance)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid totalBalance", err)
		}
		update.TotalBalance = omit.From(balance)
	}

	if body.MonthlyBudget != nil {
		budget, err := decimal.NewFromString(*body.MonthlyBudget)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid monthlyBudget", err)
		}
		if budget.IsNegative() {
			return update, huma.NewError(http.StatusBadRequest, "monthlyBudget must not be negative")
		}
		update.MonthlyBudget = omit.From(budget)
	}

	if body.Currency != nil {
		if !settings.IsSupportedCurrency(*body.Currency) {
			return update, huma.NewError(http.StatusBadRequest,
				fmt.Sprintf("unsupported currency, expected one of %v", settings.SupportedCurrencies()))
		}
		update.Currency = omit.From(*body.Currency)
	}

	return update, nil
}

// fromModel takes the symbol from the settings currency.
func (h *Handler) fromModel(w wallet.Wallet) Wallet {
	display := h.WalletService.Settings().Currency
	return Wallet{
		TotalBalance:    w.TotalBalance.String(),
		MonthlyBudget:   w.MonthlyBudget.String(),
		Currency:        w.Currency,
		DisplayCurrency: display,
		CurrencySymbol:  settings.Symbol(display),
	}
}
