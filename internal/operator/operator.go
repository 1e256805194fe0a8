package operator

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	id      int
	storage *storage.Storage
	queue   <-chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(id int, s *storage.Storage, queue <-chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		id:      id,
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		start := time.Now()
		err := o.processItem(item)

		entry := o.logger.WithFields(logrus.Fields{
			"operator":   o.id,
			"action":     actionName(item.action),
			"durationMs": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Debug("Operator.processItem.failed")
		} else {
			entry.Debug("Operator.processItem.committed")
		}

		item.response <- ActionItemResponse{err: err}
	}
}

// processItem runs one action inside its own Writer. The action's changes
// become visible only if Perform succeeds and the commit persists.
func (o *Operator) processItem(item ActionItem) (err error) {
	// The caller already gave up; applying the action now would surprise it.
	if err = item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = writer.Rollback()
			err = fmt.Errorf("%s panicked: %v", actionName(item.action), r)
			o.logger.WithField("operator", o.id).WithError(err).Error("Operator.processItem.panic")
		}
	}()

	if err = item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback()
		return err
	}

	return writer.Commit(item.ctx)
}

func actionName(action actions.IAction) string {
	return fmt.Sprintf("%T", action)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
