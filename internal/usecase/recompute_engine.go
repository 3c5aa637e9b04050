package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"painel_incentivos/internal/domain/catalog"
	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/domain/rollup"
	"painel_incentivos/internal/infrastructure/metrics"
	"painel_incentivos/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// IRecomputeEngine rebuilds state rollups from the project and form
// collections, discarding any drift left by incremental updates.
type IRecomputeEngine interface {
	RecomputeState(ctx context.Context, state string) (entities.StateRollup, error)
	RecomputeStates(ctx context.Context, states []string) error
	RecomputeAll(ctx context.Context) error
	EnsureStates(ctx context.Context) (int, error)
}

type RecomputeEngine struct {
	projects interfaces.IProjectRepository
	rollups  interfaces.IStateRollupRepository
	loader   snapshotLoader
	loc      rollup.Locator
}

var _ IRecomputeEngine = (*RecomputeEngine)(nil)

func NewRecomputeEngine(
	projects interfaces.IProjectRepository,
	registrations interfaces.IRegistrationFormRepository,
	followUps interfaces.IFollowUpFormRepository,
	rollups interfaces.IStateRollupRepository,
	loc rollup.Locator,
) *RecomputeEngine {
	return &RecomputeEngine{
		projects: projects,
		rollups:  rollups,
		loader:   snapshotLoader{registrations: registrations, followUps: followUps},
		loc:      loc,
	}
}

// RecomputeState folds every active and approved project of state, in
// project id order, and replaces the stored rollup. A state with no such
// project gets a zeroed document. Nothing is written if any read fails.
func (e *RecomputeEngine) RecomputeState(ctx context.Context, state string) (out entities.StateRollup, err error) {
	st, ok := catalog.StateByName(state)
	if !ok {
		return entities.StateRollup{}, ErrUnknownState
	}

	ctx, span := tracer.Start(ctx, "rollup.Recompute", trace.WithAttributes(
		attribute.String("state", st.Slug),
	))
	defer func() { endSpan(span, err) }()
	start := time.Now()

	list, err := e.projects.ListCountingInState(ctx, st.Nome)
	if err != nil {
		log.Printf("[rollup][recompute] list projects failed state=%s err=%v", st.Slug, err)
		return entities.StateRollup{}, fmt.Errorf("list projects of %s: %w", st.Slug, err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	b := rollup.NewBuilder(st.Nome, e.loc)
	folded := 0
	for _, p := range list {
		if !p.Counts() {
			continue
		}
		s, err := e.loader.Current(ctx, p)
		if err != nil {
			log.Printf("[rollup][recompute] load form failed state=%s project_id=%s err=%v", st.Slug, p.ID, err)
			return entities.StateRollup{}, err
		}
		b.Add(s)
		folded++
	}

	built := b.Build()
	cur, found, err := e.rollups.Get(ctx, st.Slug)
	if err != nil {
		log.Printf("[rollup][recompute] read failed state=%s err=%v", st.Slug, err)
		return entities.StateRollup{}, fmt.Errorf("read rollup %s: %w", st.Slug, err)
	}
	if found && rollup.SameContent(cur, built) {
		metrics.RollupTransactions.WithLabelValues(metrics.ModeRecompute, metrics.ResultSkipped).Inc()
		span.SetAttributes(attribute.Int("projects", folded), attribute.Bool("unchanged", true))
		return cur, nil
	}

	saved, err := e.rollups.Put(ctx, built)
	if err != nil {
		metrics.RollupTransactions.WithLabelValues(metrics.ModeRecompute, metrics.ResultFailed).Inc()
		log.Printf("[rollup][recompute] write failed state=%s err=%v", st.Slug, err)
		return entities.StateRollup{}, fmt.Errorf("write rollup %s: %w", st.Slug, err)
	}

	metrics.RollupTransactions.WithLabelValues(metrics.ModeRecompute, metrics.ResultApplied).Inc()
	metrics.RecomputeDuration.Observe(time.Since(start).Seconds())
	metrics.RecomputeProjects.Observe(float64(folded))
	span.SetAttributes(attribute.Int("projects", folded))
	return saved, nil
}

// RecomputeStates recomputes each distinct state concurrently. Names that do
// not match any state are logged and ignored.
func (e *RecomputeEngine) RecomputeStates(ctx context.Context, states []string) error {
	seen := map[string]bool{}
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range states {
		st, ok := catalog.StateByName(name)
		if !ok {
			log.Printf("[rollup][recompute] ignoring unknown state name=%q", name)
			continue
		}
		if seen[st.Slug] {
			continue
		}
		seen[st.Slug] = true
		g.Go(func() error {
			_, err := e.RecomputeState(gctx, st.Nome)
			return err
		})
	}
	return g.Wait()
}

// EnsureStates creates a zeroed rollup for every state that has none yet, so
// incremental deltas always find a document to update. Existing rollups are
// never touched. It returns how many documents were created.
func (e *RecomputeEngine) EnsureStates(ctx context.Context) (int, error) {
	created := 0
	for _, st := range catalog.States {
		ok, err := e.rollups.Create(ctx, rollup.Empty(st.Nome))
		if err != nil {
			log.Printf("[rollup][bootstrap] create failed state=%s err=%v", st.Slug, err)
			return created, fmt.Errorf("create rollup %s: %w", st.Slug, err)
		}
		if ok {
			created++
		}
	}
	if created > 0 {
		log.Printf("[rollup][bootstrap] created missing rollups count=%d", created)
	}
	return created, nil
}

func (e *RecomputeEngine) RecomputeAll(ctx context.Context) error {
	names := make([]string, 0, len(catalog.States))
	for _, st := range catalog.States {
		names = append(names, st.Nome)
	}
	return e.RecomputeStates(ctx, names)
}
