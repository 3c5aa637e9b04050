package memory

import (
	"context"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type LawRepository struct {
	s *Store
}

var _ interfaces.ILawRepository = (*LawRepository)(nil)

func NewLawRepository(s *Store) *LawRepository {
	return &LawRepository{s: s}
}

func (r *LawRepository) Create(_ context.Context, l entities.Law) (entities.Law, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	r.s.laws[l.ID] = l
	return l, nil
}

func (r *LawRepository) GetByID(_ context.Context, id string) (entities.Law, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.laws[id], nil
}

func (r *LawRepository) List(_ context.Context) ([]entities.Law, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Law, 0, len(r.s.laws))
	for _, id := range sortedKeys(r.s.laws) {
		out = append(out, r.s.laws[id])
	}
	return out, nil
}

func (r *LawRepository) Update(_ context.Context, l entities.Law) (entities.Law, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.laws[l.ID]; !ok {
		return entities.Law{}, nil
	}
	r.s.laws[l.ID] = l
	return l, nil
}

func (r *LawRepository) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.laws[id]; !ok {
		return false, nil
	}
	delete(r.s.laws, id)
	return true, nil
}

type AssociationRepository struct {
	s *Store
}

var _ interfaces.IAssociationRepository = (*AssociationRepository)(nil)

func NewAssociationRepository(s *Store) *AssociationRepository {
	return &AssociationRepository{s: s}
}

func (r *AssociationRepository) AddProject(_ context.Context, usuarioID, projectID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := r.s.associations[usuarioID]
	a.UsuarioID = usuarioID
	if !containsString(a.ProjetosIDs, projectID) {
		a.ProjetosIDs = append(append([]string(nil), a.ProjetosIDs...), projectID)
	}
	r.s.associations[usuarioID] = a
	return nil
}

func (r *AssociationRepository) GetByUserID(_ context.Context, usuarioID string) (entities.Association, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a := r.s.associations[usuarioID]
	a.ProjetosIDs = append([]string(nil), a.ProjetosIDs...)
	return a, nil
}
