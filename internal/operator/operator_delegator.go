package operator

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/apperrors"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

const queueSize = 1000

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
// Storage admits a single Writer at a time, so actions never interleave
// regardless of the worker count.
type OperatorDelegator struct {
	storage    *storage.Storage
	queue      chan ActionItem
	numWorkers int
	logger     *logrus.Logger
	wg         sync.WaitGroup
	stopOnce   sync.Once

	stateMu sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int, logger *logrus.Logger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
		logger:     logger,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(i, d.storage, d.queue, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop refuses new actions, lets the workers drain the queue and waits for them.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stateMu.Lock()
		d.stopped = true
		close(d.queue)
		d.stateMu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action and waits for its outcome. ctx only bounds the
// wait for a queue slot; once queued, the worker's result is returned so the
// caller never sees an error for a change that was committed.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.stateMu.RLock()
	if d.stopped {
		d.stateMu.RUnlock()
		return apperrors.ErrOperatorStopped
	}
	select {
	case d.queue <- item:
	case <-ctx.Done():
		d.stateMu.RUnlock()
		return ctx.Err()
	}
	d.stateMu.RUnlock()

	resp := <-respCh
	return resp.err
}
