package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/handlers"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount      string `json:"amount" required:"true" doc:"Decimal amount greater than zero"`
	Category    string `json:"category" required:"true" minLength:"1" doc:"Category id"`
	Description string `json:"description" required:"true" minLength:"1" doc:"Description of the transaction"`
	Date        string `json:"date,omitempty" required:"false" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	Type        string `json:"type" required:"true" enum:"expense,income" doc:"Transaction type"`
	IsPlanned   bool   `json:"isPlanned,omitempty" required:"false" doc:"Planned transactions must be dated in the future"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

type CreateTransactionResponse struct {
	Transaction   Transaction    `json:"transaction"`
	BudgetWarning *BudgetWarning `json:"budgetWarning,omitempty" doc:"Present when this expense reached the budget warning threshold"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	AddTransaction(ctx context.Context, draft service.TransactionDraft) (*service.AddTransactionResult, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records an expense or income. Non-planned transactions move the wallet balance.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
// A missing date is left zero so the service can default it.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionDraft, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TransactionDraft{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return service.TransactionDraft{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.TransactionDraft{
		Amount:      amount,
		Category:    input.Body.Category,
		Description: input.Body.Description,
		Date:        date,
		Type:        transaction.Type(input.Body.Type),
		IsPlanned:   input.Body.IsPlanned,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	draft, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("addTransactionMs")
	result, err := h.TransactionService.AddTransaction(ctx, draft)
	stopTimer()
	if err != nil {
		return nil, handlers.ServiceError("failed to create transaction", err)
	}

	logData.AddData("transactionID", result.Transaction.ID)
	logData.AddData("budgetWarning", result.Warning != nil)

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponse{
			Transaction:   fromModel(result.Transaction),
			BudgetWarning: fromWarning(result.Warning),
		},
	}, nil
}
