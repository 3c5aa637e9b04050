package interfaces

import (
	"context"
	"painel_incentivos/internal/domain/entities"
)

// ILawRepository abstracts the "leis" collection.
type ILawRepository interface {
	Create(ctx context.Context, l entities.Law) (entities.Law, error)
	GetByID(ctx context.Context, id string) (entities.Law, error)
	List(ctx context.Context) ([]entities.Law, error)
	Update(ctx context.Context, l entities.Law) (entities.Law, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IAssociationRepository abstracts the "associacao" collection that links a
// user to the projects they registered.
type IAssociationRepository interface {
	AddProject(ctx context.Context, usuarioID, projectID string) error
	GetByUserID(ctx context.Context, usuarioID string) (entities.Association, error)
}
