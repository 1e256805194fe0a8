package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for every transaction listing.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type CategoryTransactionsInput struct {
	CategoryID string `path:"categoryID" minLength:"1" doc:"Category id"`
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions() transaction.List
	PlannedTransactions() transaction.List
	TransactionsByCategory(categoryID string) transaction.List
}

// ListTransactionsHandler serves the read-only transaction listings.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns every transaction, planned ones included.",
		Tags:        []string{"Transactions"},
	}, h.handleAll)

	huma.Register(api, huma.Operation{
		OperationID: "list-planned-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/planned",
		Summary:     "List planned transactions",
		Description: "Returns planned transactions regardless of date.",
		Tags:        []string{"Transactions"},
	}, h.handlePlanned)

	huma.Register(api, huma.Operation{
		OperationID: "list-category-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/category/{categoryID}",
		Summary:     "List transactions in a category",
		Description: "Returns the non-planned transactions of one category.",
		Tags:        []string{"Transactions"},
	}, h.handleCategory)
}

func (h *ListTransactionsHandler) handleAll(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	return listOutput(ctx, h.TransactionService.ListTransactions()), nil
}

func (h *ListTransactionsHandler) handlePlanned(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	return listOutput(ctx, h.TransactionService.PlannedTransactions()), nil
}

func (h *ListTransactionsHandler) handleCategory(ctx context.Context, input *CategoryTransactionsInput) (*ListTransactionsOutput, error) {
	logging.GetLogData(ctx).AddData("categoryID", input.CategoryID)
	return listOutput(ctx, h.TransactionService.TransactionsByCategory(input.CategoryID)), nil
}

func listOutput(ctx context.Context, list transaction.List) *ListTransactionsOutput {
	logging.GetLogData(ctx).AddData("transactionCount", len(list))
	return &ListTransactionsOutput{
		Body: ListTransactionsResponseBody{Transactions: FromList(list.SortedByDateDesc())},
	}
}
