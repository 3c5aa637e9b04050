package response

import (
	"testing"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase"
)

func TestFromProjectView(t *testing.T) {
	now := time.Now().UTC()
	v := usecase.ProjectView{
		Project: entities.Project{
			ID:        "p1",
			Nome:      "Orquestra",
			Status:    entities.ProjectStatusAprovado,
			Ativo:     true,
			Empresas:  []entities.Sponsor{{Nome: "ACME", ValorAportado: 10}},
			CreatedAt: now,
		},
		LeiSigla: "LIE",
	}

	res := FromProjectView(v)
	if res.ID != "p1" || res.Status != "aprovado" || res.LeiSigla != "LIE" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Estados == nil || res.Municipios == nil {
		t.Fatalf("expected empty lists instead of nil: %+v", res)
	}
	if len(res.Empresas) != 1 || res.Empresas[0].Nome != "ACME" {
		t.Fatalf("unexpected sponsors: %+v", res.Empresas)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromOverview(t *testing.T) {
	o := usecase.Overview{
		Rollup: entities.StateRollup{
			NomeEstado:    "Todos",
			QtdProjetos:   2,
			MunicipiosRef: map[string]int{"Campinas": 1},
			Lei:           []entities.CategoryCount{{Nome: "Rouanet", QtdProjetos: 2}},
		},
		ProjetosPorEstado: map[string]int{"São Paulo": 2},
		EstadosAtendidos:  1,
	}

	res := FromOverview(o)
	if res.NomeEstado != "Todos" || res.QtdProjetos != 2 || res.EstadosAtendidos != 1 {
		t.Fatalf("unexpected overview: %+v", res)
	}
	if res.ProjetosPorEstado["São Paulo"] != 2 || len(res.Lei) != 1 {
		t.Fatalf("unexpected overview: %+v", res)
	}
	if res.Segmento == nil || res.IDProjects == nil {
		t.Fatalf("expected empty lists instead of nil")
	}
}
