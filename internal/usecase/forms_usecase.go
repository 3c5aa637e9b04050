package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"
)

const dateLayout = "2006-01-02"

// IFormsUseCase handles the two form submissions.
//
//   - POST /v1/forms/cadastro => SubmitRegistration()
//   - POST /v1/forms/acompanhamento => SubmitFollowUp()

type IFormsUseCase interface {
	SubmitRegistration(ctx context.Context, f entities.RegistrationForm) (entities.Project, error)
	SubmitFollowUp(ctx context.Context, f entities.FollowUpForm) (entities.FollowUpForm, error)
}

type FormsUseCase struct {
	projects      interfaces.IProjectRepository
	registrations interfaces.IRegistrationFormRepository
	followUps     interfaces.IFollowUpFormRepository
	associations  interfaces.IAssociationRepository
	delta         IDeltaAggregator
	loader        snapshotLoader
	now           func() time.Time
}

var _ IFormsUseCase = (*FormsUseCase)(nil)

func NewFormsUseCase(
	projects interfaces.IProjectRepository,
	registrations interfaces.IRegistrationFormRepository,
	followUps interfaces.IFollowUpFormRepository,
	associations interfaces.IAssociationRepository,
	delta IDeltaAggregator,
) *FormsUseCase {
	return &FormsUseCase{
		projects:      projects,
		registrations: registrations,
		followUps:     followUps,
		associations:  associations,
		delta:         delta,
		loader:        snapshotLoader{registrations: registrations, followUps: followUps},
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// SubmitRegistration creates a pending, inactive project together with its
// registration form. Pending projects do not count in the state rollups, so
// no aggregation runs here.
func (u *FormsUseCase) SubmitRegistration(ctx context.Context, f entities.RegistrationForm) (entities.Project, error) {
	p, err := u.projects.Create(ctx, entities.Project{
		Nome:          f.NomeProjeto,
		Instituicao:   f.Instituicao,
		Status:        entities.ProjectStatusPendente,
		Ativo:         false,
		Estados:       f.Estados,
		Municipios:    f.Municipios,
		Lei:           f.Lei,
		ValorAprovado: f.ValorAprovado,
		Empresas:      []entities.Sponsor{},
	})
	if err != nil {
		log.Printf("[forms][cadastro] create project failed err=%v", err)
		return entities.Project{}, err
	}

	f.ProjetoID = p.ID
	f.DataPreenchido = u.now().Format(dateLayout)
	f.QtdEstados = len(f.Estados)
	f.QtdMunicipios = len(f.Municipios)
	saved, err := u.registrations.Create(ctx, f)
	if err != nil {
		log.Printf("[forms][cadastro] create form failed project_id=%s err=%v", p.ID, err)
		return entities.Project{}, err
	}

	p.UltimoFormulario = saved.ID
	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		log.Printf("[forms][cadastro] link form failed project_id=%s form_id=%s err=%v", p.ID, saved.ID, err)
		return entities.Project{}, err
	}
	p = updated

	if uid := strings.TrimSpace(f.UsuarioID); uid != "" {
		if err := u.associations.AddProject(ctx, uid, p.ID); err != nil {
			log.Printf("[forms][cadastro] associate user failed user_id=%s project_id=%s err=%v", uid, p.ID, err)
			return entities.Project{}, err
		}
	}
	return p, nil
}

// SubmitFollowUp records a follow-up form. When the project currently counts
// in the rollups, the difference between its previous snapshot and the new
// one is applied first; the form is only written once every state
// transaction has committed.
func (u *FormsUseCase) SubmitFollowUp(ctx context.Context, f entities.FollowUpForm) (entities.FollowUpForm, error) {
	f.ProjetoID = strings.TrimSpace(f.ProjetoID)
	if f.ProjetoID == "" {
		return entities.FollowUpForm{}, ErrInvalidProjectID
	}

	p, err := u.projects.GetByID(ctx, f.ProjetoID)
	if err != nil {
		return entities.FollowUpForm{}, err
	}
	if p.ID == "" {
		return entities.FollowUpForm{}, ErrProjectNotFound
	}

	f.DataResposta = u.now().Format(dateLayout)
	f.QtdEstados = len(f.Estados)
	f.QtdMunicipios = len(f.Municipios)

	if p.Counts() {
		prev, err := u.loader.Latest(ctx, p)
		if err != nil {
			log.Printf("[forms][acompanhamento] load previous snapshot failed project_id=%s err=%v", p.ID, err)
			return entities.FollowUpForm{}, err
		}
		next := entities.SnapshotFromFollowUp(f).WithProject(p)
		if err := u.delta.Apply(ctx, prev, next); err != nil {
			log.Printf("[forms][acompanhamento] aggregation failed project_id=%s err=%v", p.ID, err)
			return entities.FollowUpForm{}, fmt.Errorf("%w: %w", ErrAggregationFailed, err)
		}
	}

	saved, err := u.followUps.Create(ctx, f)
	if err != nil {
		log.Printf("[forms][acompanhamento] create form failed project_id=%s err=%v", p.ID, err)
		return entities.FollowUpForm{}, err
	}

	p.Instituicao = f.Instituicao
	p.Estados = f.Estados
	p.Municipios = f.Municipios
	p.Lei = f.Lei
	p.UltimoFormulario = saved.ID
	if _, err := u.projects.Update(ctx, p); err != nil {
		log.Printf("[forms][acompanhamento] update project failed project_id=%s form_id=%s err=%v", p.ID, saved.ID, err)
		return entities.FollowUpForm{}, err
	}
	return saved, nil
}
