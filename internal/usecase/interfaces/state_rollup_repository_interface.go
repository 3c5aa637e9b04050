package interfaces

import (
	"context"
	"errors"
	"painel_incentivos/internal/domain/entities"
)

// ErrRollupConflict is returned by Update when every attempt lost the race
// against a concurrent write.
var ErrRollupConflict = errors.New("state rollup transaction conflict")

// RollupMutator computes the next version of a rollup from the current one.
// It may run several times when the store detects a concurrent write, so it
// must not have side effects.
type RollupMutator func(current entities.StateRollup) (entities.StateRollup, error)

// IStateRollupRepository abstracts the "dadosEstados" collection.
//
//   - Get reads the latest committed document (found=false when missing)
//   - Update is a transactional read-modify-write with optimistic conflict
//     detection; a missing document is left alone and reported as found=false
//   - Put replaces the whole document and bumps its version, so any
//     transaction that read the previous version retries on top of it
//   - Create writes r only when no document exists for its id yet
//     (created=false otherwise); it never touches an existing rollup
//   - ListNonEmpty returns every rollup whose qtdProjetos is not zero

type IStateRollupRepository interface {
	Get(ctx context.Context, slug string) (entities.StateRollup, bool, error)
	Update(ctx context.Context, slug string, mutate RollupMutator) (bool, error)
	Put(ctx context.Context, r entities.StateRollup) (entities.StateRollup, error)
	Create(ctx context.Context, r entities.StateRollup) (bool, error)
	ListNonEmpty(ctx context.Context) ([]entities.StateRollup, error)
}
