package memory

import (
	"context"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"
)

type StateRollupRepository struct {
	s *Store
}

var _ interfaces.IStateRollupRepository = (*StateRollupRepository)(nil)

func NewStateRollupRepository(s *Store) *StateRollupRepository {
	return &StateRollupRepository{s: s}
}

func (r *StateRollupRepository) Get(_ context.Context, slug string) (entities.StateRollup, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cur, ok := r.s.rollups[slug]
	if !ok {
		return entities.StateRollup{}, false, nil
	}
	return cur.Clone(), true, nil
}

// Update holds the store lock across the read-modify-write, so there is never
// a conflict to retry.
func (r *StateRollupRepository) Update(_ context.Context, slug string, mutate interfaces.RollupMutator) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.rollups[slug]
	if !ok {
		return false, nil
	}
	next, err := mutate(cur.Clone())
	if err != nil {
		return true, err
	}
	next.ID = slug
	next.Version = cur.Version + 1
	r.s.rollups[slug] = next.Clone()
	return true, nil
}

func (r *StateRollupRepository) Put(_ context.Context, doc entities.StateRollup) (entities.StateRollup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc.Version = r.s.rollups[doc.ID].Version + 1
	r.s.rollups[doc.ID] = doc.Clone()
	return doc.Clone(), nil
}

func (r *StateRollupRepository) Create(_ context.Context, doc entities.StateRollup) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rollups[doc.ID]; ok {
		return false, nil
	}
	doc.Version = 1
	r.s.rollups[doc.ID] = doc.Clone()
	return true, nil
}

func (r *StateRollupRepository) ListNonEmpty(_ context.Context) ([]entities.StateRollup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.StateRollup{}
	for _, id := range sortedKeys(r.s.rollups) {
		if doc := r.s.rollups[id]; doc.QtdProjetos != 0 {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}
