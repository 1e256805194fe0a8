package actions

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
)

// SaveSettings overwrites the settings.
type SaveSettings struct {
	Settings settings.Settings

	IAction
}

func (s *SaveSettings) Perform(ctx context.Context, writer *storage.Writer) error {
	writer.UpdateSettings(s.Settings)
	return nil
}

// UpdateSettings overwrites only the fields that are set.
type UpdateSettings struct {
	Currency               omit.Val[string]
	Notifications          omit.Val[bool]
	BudgetWarningThreshold omit.Val[int]

	Result settings.Settings

	IAction
}

func (u *UpdateSettings) Perform(ctx context.Context, writer *storage.Writer) error {
	updated := writer.Settings()
	if v, ok := u.Currency.Get(); ok {
		updated.Currency = v
	}
	if v, ok := u.Notifications.Get(); ok {
		updated.Notifications = v
	}
	if v, ok := u.BudgetWarningThreshold.Get(); ok {
		updated.BudgetWarningThreshold = v
	}

	writer.UpdateSettings(updated)
	u.Result = updated
	return nil
}
