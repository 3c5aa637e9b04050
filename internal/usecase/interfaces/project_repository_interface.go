package interfaces

import (
	"context"
	"painel_incentivos/internal/domain/entities"
)

// IProjectRepository abstracts persistence for Project.
//
// Lookups return a zero Project (empty ID) when the record does not exist.
// The "Counting" queries only return projects that are active and approved,
// which is the population the state rollups are built from.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	ListCountingInState(ctx context.Context, state string) ([]entities.Project, error)
	ListCountingInMunicipality(ctx context.Context, municipio string) ([]entities.Project, error)
	// DeleteCascade removes the project, its registration form and every
	// follow-up form in one batch. It reports false when the project is missing.
	DeleteCascade(ctx context.Context, id string) (bool, error)
}
