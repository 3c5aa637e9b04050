package usecase

import (
	"context"
	"strings"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"
)

type ILawUseCase interface {
	Create(ctx context.Context, nome, sigla string) (entities.Law, error)
	Get(ctx context.Context, id string) (entities.Law, error)
	List(ctx context.Context) ([]entities.Law, error)
	Update(ctx context.Context, id, nome, sigla string) (entities.Law, error)
	Delete(ctx context.Context, id string) error
}

type LawUseCase struct {
	repo interfaces.ILawRepository
}

var _ ILawUseCase = (*LawUseCase)(nil)

func NewLawUseCase(repo interfaces.ILawRepository) *LawUseCase {
	return &LawUseCase{repo: repo}
}

func (u *LawUseCase) Create(ctx context.Context, nome, sigla string) (entities.Law, error) {
	nome, sigla = strings.TrimSpace(nome), strings.TrimSpace(sigla)
	if nome == "" {
		return entities.Law{}, ErrInvalidLaw
	}
	return u.repo.Create(ctx, entities.Law{Nome: nome, Sigla: sigla})
}

func (u *LawUseCase) Get(ctx context.Context, id string) (entities.Law, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Law{}, ErrInvalidLaw
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Law{}, err
	}
	if l.ID == "" {
		return entities.Law{}, ErrLawNotFound
	}
	return l, nil
}

func (u *LawUseCase) List(ctx context.Context) ([]entities.Law, error) {
	return u.repo.List(ctx)
}

func (u *LawUseCase) Update(ctx context.Context, id, nome, sigla string) (entities.Law, error) {
	id, nome, sigla = strings.TrimSpace(id), strings.TrimSpace(nome), strings.TrimSpace(sigla)
	if id == "" || nome == "" {
		return entities.Law{}, ErrInvalidLaw
	}
	l, err := u.repo.Update(ctx, entities.Law{ID: id, Nome: nome, Sigla: sigla})
	if err != nil {
		return entities.Law{}, err
	}
	if l.ID == "" {
		return entities.Law{}, ErrLawNotFound
	}
	return l, nil
}

func (u *LawUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLaw
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLawNotFound
	}
	return nil
}
