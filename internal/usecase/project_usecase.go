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
	"painel_incentivos/internal/infrastructure/metrics"
	"painel_incentivos/internal/usecase/interfaces"
)

// ProjectView is a project as listed to administrators.
type ProjectView struct {
	entities.Project
	LeiSigla string
}

// IProjectUseCase exposes the project lifecycle. Every change that can move
// a project in or out of the rollup population recomputes its states.
//
//   - PATCH /v1/projects/:id/approve => Approve()
//   - PATCH /v1/projects/:id/reject => Reject()
//   - PATCH /v1/projects/:id/active => SetActive()
//   - DELETE /v1/projects/:id => Delete()
//   - PUT /v1/projects/:id/sponsors => SetSponsors()
//   - jobs deactivate-expired / notify-followups

type IProjectUseCase interface {
	Approve(ctx context.Context, id string) (entities.Project, error)
	Reject(ctx context.Context, id string) (entities.Project, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	SetSponsors(ctx context.Context, id string, sponsors []entities.Sponsor) (entities.Project, error)
	Get(ctx context.Context, id string) (ProjectView, error)
	List(ctx context.Context) ([]ProjectView, error)
	DeactivateExpired(ctx context.Context, today time.Time) (int, error)
	DispatchDueNotifications(ctx context.Context, now time.Time) (int, error)
}

type ProjectUseCase struct {
	projects      interfaces.IProjectRepository
	registrations interfaces.IRegistrationFormRepository
	laws          interfaces.ILawRepository
	engine        IRecomputeEngine
	notifier      interfaces.INotifier
	linkBase      string
	now           func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	projects interfaces.IProjectRepository,
	registrations interfaces.IRegistrationFormRepository,
	laws interfaces.ILawRepository,
	engine IRecomputeEngine,
	notifier interfaces.INotifier,
	linkBase string,
) *ProjectUseCase {
	return &ProjectUseCase{
		projects:      projects,
		registrations: registrations,
		laws:          laws,
		engine:        engine,
		notifier:      notifier,
		linkBase:      strings.TrimRight(linkBase, "/"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Approve marks the project approved and active and schedules the follow-up
// reminders at +3, +7 and +10 months.
func (u *ProjectUseCase) Approve(ctx context.Context, id string) (entities.Project, error) {
	return u.mutate(ctx, id, func(p *entities.Project) {
		now := u.now()
		p.Status = entities.ProjectStatusAprovado
		p.Ativo = true
		p.DataAprovado = &now
		p.Notificacoes = make([]entities.FollowUpReminder, 0, len(entities.ReminderPeriods))
		for _, months := range entities.ReminderPeriods {
			p.Notificacoes = append(p.Notificacoes, entities.FollowUpReminder{
				Period:       fmt.Sprintf("p%d", months),
				DataAgendada: now.AddDate(0, months, 0),
			})
		}
	})
}

func (u *ProjectUseCase) Reject(ctx context.Context, id string) (entities.Project, error) {
	return u.mutate(ctx, id, func(p *entities.Project) {
		p.Status = entities.ProjectStatusReprovado
	})
}

func (u *ProjectUseCase) SetActive(ctx context.Context, id string, active bool) (entities.Project, error) {
	return u.mutate(ctx, id, func(p *entities.Project) {
		p.Ativo = active
	})
}

func (u *ProjectUseCase) mutate(ctx context.Context, id string, change func(p *entities.Project)) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	change(&p)
	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if err := u.recompute(ctx, updated.ID, updated.Estados); err != nil {
		return entities.Project{}, err
	}
	return updated, nil
}

// Delete removes the project with its forms and rebuilds the states it
// operated in.
func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	ok, err := u.projects.DeleteCascade(ctx, p.ID)
	if err != nil {
		log.Printf("[projects][delete] cascade failed project_id=%s err=%v", p.ID, err)
		return err
	}
	if !ok {
		return ErrProjectNotFound
	}
	return u.recompute(ctx, p.ID, p.Estados)
}

func (u *ProjectUseCase) SetSponsors(ctx context.Context, id string, sponsors []entities.Sponsor) (entities.Project, error) {
	clean := make([]entities.Sponsor, 0, len(sponsors))
	for _, s := range sponsors {
		s.Nome = strings.TrimSpace(s.Nome)
		if s.Nome == "" || s.ValorAportado < 0 {
			return entities.Project{}, ErrInvalidSponsor
		}
		clean = append(clean, s)
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	p.Empresas = clean
	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) Get(ctx context.Context, id string) (ProjectView, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return ProjectView{}, err
	}
	siglas, err := u.lawAbbreviations(ctx)
	if err != nil {
		return ProjectView{}, err
	}
	return ProjectView{Project: p, LeiSigla: abbreviate(siglas, p.Lei)}, nil
}

// List returns every project, active ones first, then by name.
func (u *ProjectUseCase) List(ctx context.Context) ([]ProjectView, error) {
	list, err := u.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	siglas, err := u.lawAbbreviations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProjectView, 0, len(list))
	for _, p := range list {
		out = append(out, ProjectView{Project: p, LeiSigla: abbreviate(siglas, p.Lei)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ativo != out[j].Ativo {
			return out[i].Ativo
		}
		return out[i].Nome < out[j].Nome
	})
	return out, nil
}

// DeactivateExpired turns off every active project whose registration end
// date is before today, then recomputes each affected state once.
func (u *ProjectUseCase) DeactivateExpired(ctx context.Context, today time.Time) (int, error) {
	list, err := u.projects.List(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := today.UTC().Format(dateLayout)

	var states []string
	count := 0
	for _, p := range list {
		if !p.Ativo {
			continue
		}
		reg, err := u.registrations.GetByProjectID(ctx, p.ID)
		if err != nil {
			return count, err
		}
		end, err := time.Parse(dateLayout, reg.DataFinal)
		if err != nil || end.Format(dateLayout) >= cutoff {
			continue
		}
		counted := p.Counts()
		p.Ativo = false
		if _, err := u.projects.Update(ctx, p); err != nil {
			log.Printf("[jobs][deactivate] update failed project_id=%s err=%v", p.ID, err)
			return count, err
		}
		log.Printf("[jobs][deactivate] project deactivated project_id=%s data_final=%s", p.ID, reg.DataFinal)
		count++
		if counted {
			states = append(states, p.Estados...)
		}
	}
	if len(states) > 0 {
		if err := u.engine.RecomputeStates(ctx, states); err != nil {
			return count, fmt.Errorf("%w: %w", ErrAggregationFailed, err)
		}
	}
	return count, nil
}

// DispatchDueNotifications hands every unsent reminder scheduled up to now
// to the notifier and marks it sent. A failed delivery stays pending for the
// next run.
func (u *ProjectUseCase) DispatchDueNotifications(ctx context.Context, now time.Time) (int, error) {
	list, err := u.projects.List(ctx)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, p := range list {
		if p.Status != entities.ProjectStatusAprovado {
			continue
		}
		changed := false
		for i, r := range p.Notificacoes {
			if r.Enviado || r.DataAgendada.After(now) {
				continue
			}
			link := fmt.Sprintf("%s/forms-acompanhamento/%s", u.linkBase, p.ID)
			if err := u.notifier.NotifyFollowUp(ctx, p, r, link); err != nil {
				metrics.NotificationsSent.WithLabelValues(metrics.ResultFailed).Inc()
				log.Printf("[jobs][notify] delivery failed project_id=%s period=%s err=%v", p.ID, r.Period, err)
				continue
			}
			metrics.NotificationsSent.WithLabelValues(metrics.ResultApplied).Inc()
			p.Notificacoes[i].Enviado = true
			changed = true
			sent++
		}
		if changed {
			if _, err := u.projects.Update(ctx, p); err != nil {
				return sent, err
			}
		}
	}
	return sent, nil
}

func (u *ProjectUseCase) load(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) recompute(ctx context.Context, projectID string, states []string) error {
	if len(states) == 0 {
		return nil
	}
	if err := u.engine.RecomputeStates(ctx, states); err != nil {
		log.Printf("[projects][recompute] failed project_id=%s states=%v err=%v", projectID, states, err)
		return fmt.Errorf("%w: %w", ErrAggregationFailed, err)
	}
	return nil
}

func (u *ProjectUseCase) lawAbbreviations(ctx context.Context) (map[string]string, error) {
	laws, err := u.laws.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(laws))
	for _, l := range laws {
		if l.Sigla != "" {
			out[l.Nome] = l.Sigla
		}
	}
	return out, nil
}

func abbreviate(siglas map[string]string, lei string) string {
	if s, ok := siglas[lei]; ok {
		return s
	}
	return catalog.LawAbbreviation(lei)
}
