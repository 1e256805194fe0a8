package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers"
	"github.com/carson-networks/budget-tracker/internal/logging"
)

type DeleteTransactionInput struct {
	ID string `path:"id" minLength:"1" doc:"Transaction id"`
}

type DeleteTransactionOutput struct{}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id string) (bool, error)
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}. Deleting an
// unknown id succeeds.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{id}",
		Summary:       "Delete transaction",
		Description:   "Removes a transaction and reverses its balance effect.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	removed, err := h.TransactionService.DeleteTransaction(ctx, input.ID)
	if err != nil {
		return nil, handlers.ServiceError("failed to delete transaction", err)
	}

	logging.GetLogData(ctx).AddData("removed", removed)
	return &DeleteTransactionOutput{}, nil
}
