package memory

import (
	"context"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type RegistrationFormRepository struct {
	s *Store
}

var _ interfaces.IRegistrationFormRepository = (*RegistrationFormRepository)(nil)

func NewRegistrationFormRepository(s *Store) *RegistrationFormRepository {
	return &RegistrationFormRepository{s: s}
}

func (r *RegistrationFormRepository) Create(_ context.Context, f entities.RegistrationForm) (entities.RegistrationForm, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	r.s.registrations[f.ID] = f
	return f, nil
}

func (r *RegistrationFormRepository) GetByID(_ context.Context, id string) (entities.RegistrationForm, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.registrations[id], nil
}

// GetByProjectID returns the earliest registration form of the project.
func (r *RegistrationFormRepository) GetByProjectID(_ context.Context, projectID string) (entities.RegistrationForm, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out entities.RegistrationForm
	for _, id := range sortedKeys(r.s.registrations) {
		f := r.s.registrations[id]
		if f.ProjetoID != projectID {
			continue
		}
		if out.ID == "" || f.CreatedAt.Before(out.CreatedAt) {
			out = f
		}
	}
	return out, nil
}

type FollowUpFormRepository struct {
	s *Store
}

var _ interfaces.IFollowUpFormRepository = (*FollowUpFormRepository)(nil)

func NewFollowUpFormRepository(s *Store) *FollowUpFormRepository {
	return &FollowUpFormRepository{s: s}
}

func (r *FollowUpFormRepository) Create(_ context.Context, f entities.FollowUpForm) (entities.FollowUpForm, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	r.s.followUps[f.ID] = f
	return f, nil
}

func (r *FollowUpFormRepository) GetByID(_ context.Context, id string) (entities.FollowUpForm, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.followUps[id], nil
}

func (r *FollowUpFormRepository) ListByProjectID(_ context.Context, projectID string) ([]entities.FollowUpForm, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.FollowUpForm{}
	for _, id := range sortedKeys(r.s.followUps) {
		if f := r.s.followUps[id]; f.ProjetoID == projectID {
			out = append(out, f)
		}
	}
	return out, nil
}
