// Package plan computes and applies the operations needed to import a
// configuration.
package plan

import (
	"context"

	"github.com/confimport/confimport/metrics"
	"github.com/confimport/confimport/object"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A Planner creates import plans.
type Planner struct {
	Repository Repository

	// Logger is used for logging. If not set, logs are discarded.
	Logger *zap.Logger

	// Metrics, if set, records phase durations and applied operations.
	Metrics *metrics.Metrics
}

func (p *Planner) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// Plan validates the configuration and computes the operations to apply, in
// order.
//
// Validation failures are returned as errors wrapping
// *UnresolvedReferenceError and *MandatoryPropertiesError. A dependency
// cycle that cannot be broken is returned as a *DependencyCycleError.
func (p *Planner) Plan(ctx context.Context, cfg *object.Configuration) (*Plan, error) {
	logger := p.logger()

	done := p.Metrics.Phase("validate")
	v := &Validator{Logger: logger}
	res, err := v.Validate(ctx, cfg, p.Repository)
	done()
	if err != nil {
		return nil, err
	}

	done = p.Metrics.Phase("plan")
	defer done()

	ops := make([]*Operation, 0, cfg.Len())
	for _, obj := range cfg.Objects() {
		op := NewOperation(obj)
		if rec, ok := res.Resolved[obj.Reference()]; ok {
			op.bind(rec)
		}
		ops = append(ops, op)
	}

	g, err := BuildGraph(ops)
	if err != nil {
		return nil, err
	}
	g, err = BreakCycles(ctx, g, p.Repository)
	if err != nil {
		return nil, err
	}
	seq, err := Sequence(g)
	if err != nil {
		return nil, err
	}
	for _, op := range seq {
		if err := op.Classify(ctx, p.Repository); err != nil {
			return nil, err
		}
	}

	logger.Debug("Plan created", zap.Int("count", len(seq)))
	return &Plan{
		Unchangeable: res.Unchangeable,
		ops:          seq,
		graph:        g,
		repo:         p.Repository,
		logger:       logger,
		metrics:      p.Metrics,
	}, nil
}

// A Plan is an ordered list of operations. A plan can only be applied once.
type Plan struct {
	// Color enables colored output in Print.
	Color bool

	// Unchangeable lists the unchangeable property findings of validation.
	Unchangeable []UnchangeableProperties

	ops     []*Operation
	graph   *Graph
	repo    Repository
	logger  *zap.Logger
	metrics *metrics.Metrics
	applied bool
}

// Operations returns the operations in the order they are applied.
func (p *Plan) Operations() []*Operation {
	return p.ops
}

// Graph returns the dependency graph of the operations.
func (p *Plan) Graph() *Graph {
	return p.graph
}

// Apply applies all operations in order and returns the number of
// operations that persisted a change.
//
// Apply stops at the first error. Operations applied before are not rolled
// back; the returned count and the *ApplyError tell how many were.
func (p *Plan) Apply(ctx context.Context) (int, error) {
	if p.applied {
		return 0, errors.New("plan already applied")
	}
	p.applied = true

	defer p.metrics.Phase("apply")()
	n := 0
	for _, op := range p.ops {
		logger := p.logger.With(zap.String("op", op.String()))
		logger.Info("Processing")
		changed, err := op.apply(ctx, p.repo)
		if err != nil {
			logger.Error("Operation failed", zap.Error(err), zap.Int("count", n))
			return n, &ApplyError{Applied: n, Op: op, Err: err}
		}
		if changed {
			n++
			p.metrics.Operation(op.Type.String())
		}
	}
	p.logger.Info("Plan applied", zap.Int("count", n))
	return n, nil
}
