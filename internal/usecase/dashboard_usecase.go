package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"painel_incentivos/internal/domain/catalog"
	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/domain/rollup"
	"painel_incentivos/internal/infrastructure/metrics"
	"painel_incentivos/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	defaultBatchSize     = 10
	defaultBatchInterval = 200 * time.Millisecond
)

// Overview is the "all states" dashboard view.
type Overview struct {
	Rollup            entities.StateRollup
	ProjetosPorEstado map[string]int
	EstadosAtendidos  int
}

// IDashboardUseCase serves the dashboard reads.
//
//   - GET /v1/dashboard/states/:state => GetState()
//   - GET /v1/dashboard/states => Overview()
//   - GET /v1/dashboard/municipalities?m=... => CombineMunicipalities()

type IDashboardUseCase interface {
	GetState(ctx context.Context, state string) (entities.StateRollup, error)
	Overview(ctx context.Context) (Overview, error)
	CombineMunicipalities(ctx context.Context, municipios []string) (entities.StateRollup, error)
}

// DashboardOptions tunes how repeated projects are fetched for the
// double-count correction.
type DashboardOptions struct {
	BatchSize     int
	BatchInterval time.Duration
}

type DashboardUseCase struct {
	rollups   interfaces.IStateRollupRepository
	projects  interfaces.IProjectRepository
	loader    snapshotLoader
	batchSize int
	limiter   *rate.Limiter
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	rollups interfaces.IStateRollupRepository,
	projects interfaces.IProjectRepository,
	registrations interfaces.IRegistrationFormRepository,
	followUps interfaces.IFollowUpFormRepository,
	opts DashboardOptions,
) *DashboardUseCase {
	if opts.BatchSize <= 0 || opts.BatchSize > defaultBatchSize {
		opts.BatchSize = defaultBatchSize
	}
	if opts.BatchInterval <= 0 {
		opts.BatchInterval = defaultBatchInterval
	}
	return &DashboardUseCase{
		rollups:   rollups,
		projects:  projects,
		loader:    snapshotLoader{registrations: registrations, followUps: followUps},
		batchSize: opts.BatchSize,
		limiter:   rate.NewLimiter(rate.Every(opts.BatchInterval), 1),
	}
}

func (u *DashboardUseCase) GetState(ctx context.Context, state string) (entities.StateRollup, error) {
	st, ok := catalog.StateByName(state)
	if !ok {
		return entities.StateRollup{}, ErrUnknownState
	}
	r, found, err := u.rollups.Get(ctx, st.Slug)
	if err != nil {
		return entities.StateRollup{}, err
	}
	if !found {
		return entities.StateRollup{}, ErrRollupNotFound
	}
	return rollup.Normalize(r), nil
}

// Overview combines every non-empty state rollup and removes the extra copies
// of projects that operate in more than one state, so each project
// contributes once to the combined totals.
func (u *DashboardUseCase) Overview(ctx context.Context) (out Overview, err error) {
	ctx, span := tracer.Start(ctx, "dashboard.Overview")
	defer func() { endSpan(span, err) }()

	list, err := u.rollups.ListNonEmpty(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("list state rollups: %w", err)
	}

	out.ProjetosPorEstado = make(map[string]int, len(list))
	for _, r := range list {
		out.ProjetosPorEstado[r.NomeEstado] = r.QtdProjetos
		if r.QtdProjetos > 0 {
			out.EstadosAtendidos++
		}
	}

	combined := rollup.CombineAll(list)
	combined, err = u.correctDoubleCount(ctx, combined)
	if err != nil {
		return Overview{}, err
	}
	combined.ID = ""
	combined.NomeEstado = rollup.AllStatesName
	combined.Version = 0
	out.Rollup = combined
	span.SetAttributes(attribute.Int("states", len(list)))
	return out, nil
}

func (u *DashboardUseCase) correctDoubleCount(ctx context.Context, combined entities.StateRollup) (entities.StateRollup, error) {
	mult := rollup.ProjectMultiplicity(combined.IDProjects)
	repeated := make([]string, 0)
	for id, n := range mult {
		if n > 1 {
			repeated = append(repeated, id)
		}
	}
	sort.Strings(repeated)

	for start := 0; start < len(repeated); start += u.batchSize {
		end := min(start+u.batchSize, len(repeated))
		if err := u.limiter.Wait(ctx); err != nil {
			return entities.StateRollup{}, err
		}
		batch := repeated[start:end]
		projects, err := u.projects.GetByIDs(ctx, batch)
		if err != nil {
			log.Printf("[dashboard][overview] fetch repeated projects failed ids=%v err=%v", batch, err)
			return entities.StateRollup{}, fmt.Errorf("fetch repeated projects: %w", err)
		}
		byID := make(map[string]entities.Project, len(projects))
		for _, p := range projects {
			byID[p.ID] = p
		}
		for _, id := range batch {
			p, ok := byID[id]
			if !ok {
				log.Printf("[dashboard][overview] repeated project missing project_id=%s copies=%d", id, mult[id])
				continue
			}
			s, err := u.loader.Current(ctx, p)
			if err != nil {
				log.Printf("[dashboard][overview] load form failed project_id=%s err=%v", id, err)
				return entities.StateRollup{}, err
			}
			combined = rollup.Subtract(combined, s, mult[id]-1, len(p.Empresas))
			metrics.DoubleCountCorrections.Inc()
		}
	}
	combined.IDProjects = rollup.DistinctIDs(combined.IDProjects)
	return combined, nil
}

// CombineMunicipalities folds the active and approved projects that operate
// in any of municipios. Each project is counted once, however many of the
// selected municipalities it covers.
func (u *DashboardUseCase) CombineMunicipalities(ctx context.Context, municipios []string) (out entities.StateRollup, err error) {
	selected := make([]string, 0, len(municipios))
	for _, m := range municipios {
		if m = strings.TrimSpace(m); m != "" {
			selected = append(selected, m)
		}
	}
	if len(selected) == 0 {
		return entities.StateRollup{}, ErrNoMunicipalities
	}

	ctx, span := tracer.Start(ctx, "dashboard.Municipalities", trace.WithAttributes(
		attribute.StringSlice("municipios", selected),
	))
	defer func() { endSpan(span, err) }()

	byID := map[string]entities.Project{}
	matched := map[string]int{}
	for _, m := range selected {
		list, err := u.projects.ListCountingInMunicipality(ctx, m)
		if err != nil {
			return entities.StateRollup{}, fmt.Errorf("list projects of %s: %w", m, err)
		}
		for _, p := range list {
			byID[p.ID] = p
		}
		if len(list) > 0 {
			matched[m] = len(list)
		}
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b := rollup.NewBuilder("", nil)
	for _, id := range ids {
		s, err := u.loader.Current(ctx, byID[id])
		if err != nil {
			log.Printf("[dashboard][municipalities] load form failed project_id=%s err=%v", id, err)
			return entities.StateRollup{}, err
		}
		b.Add(s)
	}

	out = b.Build()
	out.MunicipiosRef = matched
	out.Municipios = make([]string, 0, len(matched))
	for m := range matched {
		out.Municipios = append(out.Municipios, m)
	}
	sort.Strings(out.Municipios)
	out.QtdMunicipios = len(out.Municipios)
	return out, nil
}
