package usecase

import (
	"context"
	"errors"
	"testing"

	"painel_incentivos/internal/domain/entities"
	mock_interfaces "painel_incentivos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLawUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewLawUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "LIC")
		if !errors.Is(err, ErrInvalidLaw) {
			t.Fatalf("expected ErrInvalidLaw, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawRepository(ctrl)
		uc := NewLawUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), entities.Law{Nome: "Lei Rouanet", Sigla: "LIC"}).
			Return(entities.Law{ID: "l1", Nome: "Lei Rouanet", Sigla: "LIC"}, nil)

		res, err := uc.Create(context.Background(), " Lei Rouanet ", " LIC ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "l1" {
			t.Fatalf("expected id l1, got %q", res.ID)
		}
	})
}

func TestLawUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, err := NewLawUseCase(nil).Get(context.Background(), "")
		if !errors.Is(err, ErrInvalidLaw) {
			t.Fatalf("expected ErrInvalidLaw, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "l1").Return(entities.Law{}, nil)

		_, err := NewLawUseCase(repo).Get(context.Background(), "l1")
		if !errors.Is(err, ErrLawNotFound) {
			t.Fatalf("expected ErrLawNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "l1").Return(entities.Law{}, errors.New("db"))

		_, err := NewLawUseCase(repo).Get(context.Background(), "l1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestLawUseCase_UpdateDelete(t *testing.T) {
	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawRepository(ctrl)
		repo.EXPECT().Update(gomock.Any(), entities.Law{ID: "l1", Nome: "Lei", Sigla: "L"}).Return(entities.Law{}, nil)

		_, err := NewLawUseCase(repo).Update(context.Background(), "l1", "Lei", "L")
		if !errors.Is(err, ErrLawNotFound) {
			t.Fatalf("expected ErrLawNotFound, got %v", err)
		}
	})

	t.Run("update invalid", func(t *testing.T) {
		_, err := NewLawUseCase(nil).Update(context.Background(), "l1", " ", "L")
		if !errors.Is(err, ErrInvalidLaw) {
			t.Fatalf("expected ErrInvalidLaw, got %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), "l1").Return(false, nil)

		if err := NewLawUseCase(repo).Delete(context.Background(), "l1"); !errors.Is(err, ErrLawNotFound) {
			t.Fatalf("expected ErrLawNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), "l1").Return(true, nil)

		if err := NewLawUseCase(repo).Delete(context.Background(), " l1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
