package operator

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashbox-server/internal/operator/actions"
	"github.com/carson-networks/cashbox-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage storage.Transactor
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s storage.Transactor, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if item.ctx.Err() != nil {
		item.response <- ActionItemResponse{err: item.ctx.Err()}
		return
	}

	if o.logger.IsLevelEnabled(logrus.DebugLevel) {
		o.logger.WithField("action", spew.Sdump(item.action)).Debug("Operator.processItem.Start")
	}

	err := o.perform(item)
	if err != nil {
		o.logger.WithError(err).WithField("action", fmt.Sprintf("%T", item.action)).Warn("Operator.processItem.Error")
	}
	item.response <- ActionItemResponse{err: err}
}

func (o *Operator) perform(item ActionItem) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("operator: action panicked: %v", p)
		}
	}()

	return storage.WithTx(item.ctx, o.storage, func(writer *storage.Writer) error {
		return item.action.Perform(item.ctx, writer)
	})
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
