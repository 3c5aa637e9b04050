package interfaces

import (
	"context"
	"painel_incentivos/internal/domain/entities"
)

// IRegistrationFormRepository abstracts persistence for RegistrationForm
// ("forms-cadastro"). Missing records come back with an empty ID.
type IRegistrationFormRepository interface {
	Create(ctx context.Context, f entities.RegistrationForm) (entities.RegistrationForm, error)
	GetByID(ctx context.Context, id string) (entities.RegistrationForm, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.RegistrationForm, error)
}

// IFollowUpFormRepository abstracts persistence for FollowUpForm
// ("forms-acompanhamento").
type IFollowUpFormRepository interface {
	Create(ctx context.Context, f entities.FollowUpForm) (entities.FollowUpForm, error)
	GetByID(ctx context.Context, id string) (entities.FollowUpForm, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.FollowUpForm, error)
}
