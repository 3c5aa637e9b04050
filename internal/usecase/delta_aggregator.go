package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"painel_incentivos/internal/domain/catalog"
	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/domain/rollup"
	"painel_incentivos/internal/infrastructure/metrics"
	"painel_incentivos/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// IDeltaAggregator applies the difference between two snapshots of the same
// project to the rollups of the states involved.
type IDeltaAggregator interface {
	Apply(ctx context.Context, prev, next entities.ProjectSnapshot) error
}

// DeltaAggregator runs one transaction per affected state, all of them
// concurrently. The first failure cancels the transactions that have not
// committed yet and is returned; committed ones are not rolled back.
// Rollups that do not exist are skipped: the recompute path creates them.
type DeltaAggregator struct {
	rollups interfaces.IStateRollupRepository
	loc     rollup.Locator
}

var _ IDeltaAggregator = (*DeltaAggregator)(nil)

func NewDeltaAggregator(rollups interfaces.IStateRollupRepository, loc rollup.Locator) *DeltaAggregator {
	return &DeltaAggregator{rollups: rollups, loc: loc}
}

func (a *DeltaAggregator) Apply(ctx context.Context, prev, next entities.ProjectSnapshot) (err error) {
	ctx, span := tracer.Start(ctx, "rollup.Delta", trace.WithAttributes(
		attribute.String("project_id", next.ProjectID),
	))
	defer func() { endSpan(span, err) }()

	diff := rollup.DiffStates(prev.Estados, next.Estados)
	span.SetAttributes(
		attribute.Int("states.removed", len(diff.Removed)),
		attribute.Int("states.added", len(diff.Added)),
		attribute.Int("states.persisted", len(diff.Persisted)),
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, st := range diff.Removed {
		g.Go(func() error {
			return a.apply(gctx, metrics.ModeRemoved, st, next.ProjectID, func(r entities.StateRollup) (entities.StateRollup, error) {
				return rollup.ApplyRemoved(r, prev, a.loc), nil
			})
		})
	}
	for _, st := range diff.Added {
		g.Go(func() error {
			return a.apply(gctx, metrics.ModeAdded, st, next.ProjectID, func(r entities.StateRollup) (entities.StateRollup, error) {
				return rollup.ApplyAdded(r, next, a.loc), nil
			})
		})
	}
	for _, st := range diff.Persisted {
		g.Go(func() error {
			return a.apply(gctx, metrics.ModePersisted, st, next.ProjectID, func(r entities.StateRollup) (entities.StateRollup, error) {
				return rollup.ApplyPersisted(r, prev, next, a.loc), nil
			})
		})
	}
	return g.Wait()
}

func (a *DeltaAggregator) apply(ctx context.Context, mode, state, projectID string, mutate interfaces.RollupMutator) error {
	slug := catalog.Slugify(state)
	found, err := a.rollups.Update(ctx, slug, mutate)
	if err != nil {
		result := metrics.ResultFailed
		if errors.Is(err, interfaces.ErrRollupConflict) {
			result = metrics.ResultConflict
		}
		metrics.RollupTransactions.WithLabelValues(mode, result).Inc()
		log.Printf("[rollup][delta] apply failed mode=%s project_id=%s state=%s err=%v", mode, projectID, slug, err)
		return fmt.Errorf("%s delta on %s: %w", mode, slug, err)
	}
	if !found {
		metrics.RollupTransactions.WithLabelValues(mode, metrics.ResultSkipped).Inc()
		log.Printf("[rollup][delta] skip missing mode=%s project_id=%s state=%s", mode, projectID, slug)
		return nil
	}
	metrics.RollupTransactions.WithLabelValues(mode, metrics.ResultApplied).Inc()
	return nil
}
