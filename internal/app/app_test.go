package app

import (
	"context"
	"testing"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MemoryStore(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)

	require.NoError(t, a.Engine.RecomputeAll(ctx))
	o, err := a.Dashboard.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, o.Rollup.QtdProjetos)
	assert.Equal(t, 0, o.EstadosAtendidos)

	law, err := a.Laws.Create(ctx, "Lei de Incentivo ao Esporte", "LIE")
	require.NoError(t, err)
	assert.NotEmpty(t, law.ID)
}

func TestNew_FreshStoreAggregatesAddedState(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)

	mg, err := a.Dashboard.GetState(ctx, "Minas Gerais")
	require.NoError(t, err, "every state rollup exists after startup")
	assert.Equal(t, 0, mg.QtdProjetos)

	p, err := a.Forms.SubmitRegistration(ctx, entities.RegistrationForm{
		UsuarioID:            "u1",
		NomeProjeto:          "Orquestra Jovem",
		Instituicao:          "Instituto X",
		ValorAprovado:        1000,
		Segmento:             "Cultura",
		Lei:                  "Lei de Incentivo à Cultura",
		ODS:                  []int{3},
		BeneficiariosDiretos: 50,
		Estados:              []string{"São Paulo"},
		Municipios:           []string{"São Paulo"},
		DataInicial:          "2024-01-01",
		DataFinal:            "2030-12-31",
	})
	require.NoError(t, err)
	_, err = a.Projects.Approve(ctx, p.ID)
	require.NoError(t, err)

	_, err = a.Forms.SubmitFollowUp(ctx, entities.FollowUpForm{
		ProjetoID:            p.ID,
		Instituicao:          "Instituto X",
		Segmento:             "Cultura",
		Lei:                  "Lei de Incentivo à Cultura",
		Estados:              []string{"São Paulo", "Minas Gerais"},
		Municipios:           []string{"São Paulo", "Belo Horizonte"},
		ODS:                  []int{3},
		BeneficiariosDiretos: 80,
	})
	require.NoError(t, err)

	mg, err = a.Dashboard.GetState(ctx, "Minas Gerais")
	require.NoError(t, err)
	assert.Equal(t, 1, mg.QtdProjetos)
	assert.Equal(t, 80, mg.BeneficiariosDireto)
	assert.Equal(t, []string{"Belo Horizonte"}, mg.Municipios)

	o, err := a.Dashboard.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"São Paulo": 1, "Minas Gerais": 1}, o.ProjetosPorEstado)
}

func TestNew_BadMunicipalitiesFile(t *testing.T) {
	_, err := New(context.Background(), config.Config{StoreDriver: config.StoreMemory, MunicipalitiesFile: "/nonexistent/municipios.yaml"})
	assert.Error(t, err)
}
