package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/storage"
)

// IAction is a unit of work run by an Operator against a storage Writer.
// Returning an error rolls back everything the action staged.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
