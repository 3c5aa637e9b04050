package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/domain/rollup"
	"painel_incentivos/internal/usecase/interfaces"
	mock_interfaces "painel_incentivos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeltaAggregator_Apply(t *testing.T) {
	prev := entities.ProjectSnapshot{ProjectID: "p1", Estados: []string{"São Paulo", "Acre"}, BeneficiariosDiretos: 50}
	next := entities.ProjectSnapshot{ProjectID: "p1", Estados: []string{"São Paulo", "Bahia"}, BeneficiariosDiretos: 80}

	t.Run("one transaction per state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStateRollupRepository(ctrl)

		var mu sync.Mutex
		results := map[string]entities.StateRollup{}
		for _, slug := range []string{"sao_paulo", "acre", "bahia"} {
			repo.EXPECT().Update(gomock.Any(), slug, gomock.Any()).DoAndReturn(
				func(_ context.Context, slug string, m interfaces.RollupMutator) (bool, error) {
					base := rollup.Empty(slug)
					base.QtdProjetos, base.BeneficiariosDireto = 1, 50
					out, err := m(base)
					mu.Lock()
					results[slug] = out
					mu.Unlock()
					return true, err
				},
			)
		}

		a := NewDeltaAggregator(repo, nil)
		if err := a.Apply(context.Background(), prev, next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := results["sao_paulo"].BeneficiariosDireto; got != 80 {
			t.Fatalf("persisted state: expected 80, got %d", got)
		}
		if got := results["acre"].QtdProjetos; got != 0 {
			t.Fatalf("removed state: expected 0 projects, got %d", got)
		}
		if got := results["bahia"].QtdProjetos; got != 2 {
			t.Fatalf("added state: expected 2 projects, got %d", got)
		}
	})

	t.Run("missing rollup is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStateRollupRepository(ctrl)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(3)

		if err := NewDeltaAggregator(repo, nil).Apply(context.Background(), prev, next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStateRollupRepository(ctrl)
		repo.EXPECT().Update(gomock.Any(), "acre", gomock.Any()).Return(false, interfaces.ErrRollupConflict)
		repo.EXPECT().Update(gomock.Any(), gomock.Not("acre"), gomock.Any()).Return(true, nil).AnyTimes()

		err := NewDeltaAggregator(repo, nil).Apply(context.Background(), prev, next)
		if !errors.Is(err, interfaces.ErrRollupConflict) {
			t.Fatalf("expected ErrRollupConflict, got %v", err)
		}
	})
}
