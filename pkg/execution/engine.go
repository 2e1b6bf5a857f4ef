// Package execution provides the engine facade that drives operator plans:
// it opens a plan, pulls it to exhaustion (or streams tuples to a callback),
// and closes it, with structured logging of the plan lifecycle.
package execution

import (
	"fmt"

	"rowdb/pkg/iterator"
	"rowdb/pkg/tuple"

	"go.uber.org/zap"
)

// Engine executes operator plans. Errors surfaced by a plan propagate
// unmodified to the caller; the engine only guarantees the plan is closed.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an engine logging through the given logger. A nil
// logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Execute opens the plan, drains it fully, and closes it, returning all
// produced tuples.
func (e *Engine) Execute(plan iterator.DbIterator) ([]*tuple.Tuple, error) {
	var results []*tuple.Tuple
	err := e.Stream(plan, func(t *tuple.Tuple) error {
		results = append(results, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Stream opens the plan and feeds each produced tuple to emit, closing the
// plan when the drain finishes or fails. An error from emit stops the drain.
func (e *Engine) Stream(plan iterator.DbIterator, emit func(*tuple.Tuple) error) error {
	if plan == nil {
		return fmt.Errorf("plan cannot be nil")
	}

	e.logger.Debug("opening plan", zap.String("schema", plan.GetTupleDesc().String()))
	if err := plan.Open(); err != nil {
		return fmt.Errorf("failed to open plan: %w", err)
	}
	defer func() {
		if err := plan.Close(); err != nil {
			e.logger.Warn("plan close failed", zap.Error(err))
		}
	}()

	rows := 0
	err := iterator.ForEach(plan, func(t *tuple.Tuple) error {
		rows++
		return emit(t)
	})
	if err != nil {
		e.logger.Debug("plan failed", zap.Int("rows", rows), zap.Error(err))
		return err
	}

	e.logger.Debug("plan drained", zap.Int("rows", rows))
	return nil
}
