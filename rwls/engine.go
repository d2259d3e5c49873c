package rwls

import (
	"context"
	"time"

	"github.com/ToluPeazy/uscp/internal/xlog"
	"github.com/ToluPeazy/uscp/problem"
	"go.uber.org/zap"
)

// New builds an Engine for inst, running the neighbor-graph and
// covering-points preprocessing described in the package doc. The
// neighbor pass is data-parallel per owned subset row; the
// covering-points pass is data-parallel per owned point range.
func New(ctx context.Context, inst *problem.Instance, opts ...Option) (*Engine, error) {
	e := &Engine{problem: inst}
	for _, opt := range opts {
		opt(e)
	}

	start := time.Now()
	neighbors, err := buildNeighbors(ctx, inst, e.denseNeighbors)
	if err != nil {
		return nil, err
	}
	covering, err := buildSubsetsCoveringPoints(ctx, inst)
	if err != nil {
		return nil, err
	}
	e.neighbors = neighbors
	e.subsetsCoveringPoints = covering

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.ObservePhaseDuration("rwls_preprocess", elapsed.Seconds())
	}
	xlog.Get().Debug("rwls preprocessing complete",
		zap.String("instance", inst.Name),
		zap.Duration("elapsed", elapsed))
	return e, nil
}
