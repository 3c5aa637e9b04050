package memory

import (
	"context"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type ProjectRepository struct {
	s *Store
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(s *Store) *ProjectRepository {
	return &ProjectRepository{s: s}
}

func (r *ProjectRepository) Create(_ context.Context, p entities.Project) (entities.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.s.projects[p.ID] = cloneProject(p)
	return cloneProject(p), nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id string) (entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[id]
	if !ok {
		return entities.Project{}, nil
	}
	return cloneProject(p), nil
}

func (r *ProjectRepository) GetByIDs(_ context.Context, ids []string) ([]entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Project, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.projects[id]; ok {
			out = append(out, cloneProject(p))
		}
	}
	return out, nil
}

func (r *ProjectRepository) Update(_ context.Context, p entities.Project) (entities.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.projects[p.ID]
	if !ok || p.ID == "" {
		return entities.Project{}, nil
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.s.projects[p.ID] = cloneProject(p)
	return cloneProject(p), nil
}

func (r *ProjectRepository) List(_ context.Context) ([]entities.Project, error) {
	return r.filter(func(entities.Project) bool { return true }), nil
}

func (r *ProjectRepository) ListCountingInState(_ context.Context, state string) ([]entities.Project, error) {
	return r.filter(func(p entities.Project) bool {
		return p.Counts() && containsString(p.Estados, state)
	}), nil
}

func (r *ProjectRepository) ListCountingInMunicipality(_ context.Context, municipio string) ([]entities.Project, error) {
	return r.filter(func(p entities.Project) bool {
		return p.Counts() && containsString(p.Municipios, municipio)
	}), nil
}

func (r *ProjectRepository) DeleteCascade(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[id]; !ok {
		return false, nil
	}
	delete(r.s.projects, id)
	for k, f := range r.s.registrations {
		if f.ProjetoID == id {
			delete(r.s.registrations, k)
		}
	}
	for k, f := range r.s.followUps {
		if f.ProjetoID == id {
			delete(r.s.followUps, k)
		}
	}
	return true, nil
}

func (r *ProjectRepository) filter(keep func(entities.Project) bool) []entities.Project {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Project{}
	for _, id := range sortedKeys(r.s.projects) {
		if p := r.s.projects[id]; keep(p) {
			out = append(out, cloneProject(p))
		}
	}
	return out
}
