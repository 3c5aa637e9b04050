package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/domain/rollup"
	mock_interfaces "painel_incentivos/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOverviewCorrectsDoubleCounting(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := registerApproved(t, h)
	_, err := h.forms.SubmitFollowUp(ctx, followUp(p.ID, []string{"São Paulo", "Minas Gerais"}, []string{"Campinas", "Belo Horizonte"}, 80))
	require.NoError(t, err)
	_, err = h.lifecycle.SetSponsors(ctx, p.ID, []entities.Sponsor{{Nome: "Empresa A", ValorAportado: 1000}})
	require.NoError(t, err)

	out, err := h.dashboard.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"São Paulo": 1, "Minas Gerais": 1}, out.ProjetosPorEstado)
	assert.Equal(t, 2, out.EstadosAtendidos)

	r := out.Rollup
	assert.Equal(t, rollup.AllStatesName, r.NomeEstado)
	assert.Equal(t, 1, r.QtdProjetos)
	assert.Equal(t, 1000.0, r.ValorTotal)
	assert.Equal(t, 80, r.BeneficiariosDireto)
	assert.Equal(t, 10, r.BeneficiariosIndireto)
	assert.Equal(t, 1, r.QtdOrganizacoes)
	assert.Equal(t, 1, r.ProjetosODS[3])
	assert.Equal(t, 1, entities.CountOf(r.Segmento, "Cultura"))
	assert.Equal(t, 1, entities.CountOf(r.Lei, leiCultura))
	assert.Equal(t, []string{p.ID}, r.IDProjects)
	assert.Equal(t, []string{"Belo Horizonte", "Campinas"}, r.Municipios)
}

func TestOverviewWithoutProjects(t *testing.T) {
	h := newHarness(t)
	out, err := h.dashboard.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.EstadosAtendidos)
	assert.Empty(t, out.ProjetosPorEstado)
	assert.Equal(t, 0, out.Rollup.QtdProjetos)
	assert.Len(t, out.Rollup.ProjetosODS, 17)
}

func TestOverviewBatchesRepeatedProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rollups := mock_interfaces.NewMockIStateRollupRepository(ctrl)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	regs := mock_interfaces.NewMockIRegistrationFormRepository(ctrl)
	follows := mock_interfaces.NewMockIFollowUpFormRepository(ctrl)

	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		ids = append(ids, string(rune('a'+i)))
	}
	a, b := rollup.Empty("Acre"), rollup.Empty("Bahia")
	for _, id := range ids {
		for _, r := range []*entities.StateRollup{&a, &b} {
			r.QtdProjetos++
			r.ValorTotal += 10
			r.IDProjects = append(r.IDProjects, id)
		}
	}
	rollups.EXPECT().ListNonEmpty(gomock.Any()).Return([]entities.StateRollup{a, b}, nil)

	var batches [][]string
	projects.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []string) ([]entities.Project, error) {
			batches = append(batches, batch)
			out := make([]entities.Project, 0, len(batch))
			for _, id := range batch {
				out = append(out, entities.Project{ID: id, ValorAprovado: 10})
			}
			return out, nil
		},
	).Times(2)
	follows.EXPECT().ListByProjectID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(12)
	regs.EXPECT().GetByProjectID(gomock.Any(), gomock.Any()).Return(entities.RegistrationForm{}, nil).Times(12)

	uc := NewDashboardUseCase(rollups, projects, regs, follows, DashboardOptions{BatchSize: 50, BatchInterval: time.Millisecond})
	out, err := uc.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 10, "batch size is capped at 10")
	assert.Len(t, batches[1], 2)
	assert.Equal(t, 12, out.Rollup.QtdProjetos)
	assert.Equal(t, 120.0, out.Rollup.ValorTotal)
}

func TestOverviewPropagatesFetchErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rollups := mock_interfaces.NewMockIStateRollupRepository(ctrl)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)

	a, b := rollup.Empty("Acre"), rollup.Empty("Bahia")
	a.QtdProjetos, b.QtdProjetos = 1, 1
	a.IDProjects, b.IDProjects = []string{"p1"}, []string{"p1"}
	rollups.EXPECT().ListNonEmpty(gomock.Any()).Return([]entities.StateRollup{a, b}, nil)
	projects.EXPECT().GetByIDs(gomock.Any(), []string{"p1"}).Return(nil, errors.New("db"))

	uc := NewDashboardUseCase(rollups, projects, nil, nil, DashboardOptions{BatchInterval: time.Millisecond})
	_, err := uc.Overview(context.Background())
	require.Error(t, err)
}

func TestGetState(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	registerApproved(t, h)

	r, err := h.dashboard.GetState(ctx, "sao paulo")
	require.NoError(t, err)
	assert.Equal(t, 1, r.QtdProjetos)

	_, err = h.dashboard.GetState(ctx, "Gondor")
	assert.ErrorIs(t, err, ErrUnknownState)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rollups := mock_interfaces.NewMockIStateRollupRepository(ctrl)
	rollups.EXPECT().Get(gomock.Any(), "acre").Return(entities.StateRollup{}, false, nil)
	uc := NewDashboardUseCase(rollups, nil, nil, nil, DashboardOptions{})
	_, err = uc.GetState(ctx, "Acre")
	assert.ErrorIs(t, err, ErrRollupNotFound)
}

func TestCombineMunicipalities(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := registerApproved(t, h)
	_, err := h.forms.SubmitFollowUp(ctx, followUp(p.ID, []string{"São Paulo"}, []string{"Campinas", "Santos"}, 80))
	require.NoError(t, err)

	other := registration()
	other.NomeProjeto = "Biblioteca"
	other.Instituicao = "Instituto Y"
	other.ValorAprovado = 2500
	other.Municipios = []string{"Santos"}
	other.BeneficiariosDiretos = 20
	q, err := h.forms.SubmitRegistration(ctx, other)
	require.NoError(t, err)

	t.Run("pending projects are excluded", func(t *testing.T) {
		out, err := h.dashboard.CombineMunicipalities(ctx, []string{"Santos"})
		require.NoError(t, err)
		assert.Equal(t, 1, out.QtdProjetos)
	})

	_, err = h.lifecycle.Approve(ctx, q.ID)
	require.NoError(t, err)

	t.Run("projects are counted once", func(t *testing.T) {
		out, err := h.dashboard.CombineMunicipalities(ctx, []string{"Campinas", "Santos", "Recife"})
		require.NoError(t, err)
		assert.Equal(t, 2, out.QtdProjetos)
		assert.Equal(t, 3500.0, out.ValorTotal)
		assert.Equal(t, 100, out.BeneficiariosDireto)
		assert.Equal(t, 2, out.QtdOrganizacoes)
		assert.Equal(t, "Biblioteca", out.MaiorAporte.Nome)
		assert.Equal(t, 2, out.ProjetosODS[3])
		assert.Equal(t, []string{"Campinas", "Santos"}, out.Municipios)
		assert.Equal(t, 2, out.QtdMunicipios)
	})

	t.Run("empty selection", func(t *testing.T) {
		_, err := h.dashboard.CombineMunicipalities(ctx, []string{" "})
		assert.ErrorIs(t, err, ErrNoMunicipalities)
	})
}
