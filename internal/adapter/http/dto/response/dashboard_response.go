package response

import (
	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase"
)

type CategoryCountResponse struct {
	Nome        string `json:"nome"`
	QtdProjetos int    `json:"qtdProjetos"`
}

type ContributionResponse struct {
	Nome          string  `json:"nome"`
	ValorAportado float64 `json:"valorAportado"`
}

// StateRollupResponse is a rollup as served to the dashboard. The internal
// municipality reference counts are not exposed.
type StateRollupResponse struct {
	ID                    string                  `json:"id"`
	NomeEstado            string                  `json:"nomeEstado"`
	QtdProjetos           int                     `json:"qtdProjetos"`
	QtdMunicipios         int                     `json:"qtdMunicipios"`
	Municipios            []string                `json:"municipios"`
	ValorTotal            float64                 `json:"valorTotal"`
	MaiorAporte           ContributionResponse    `json:"maiorAporte"`
	BeneficiariosDireto   int                     `json:"beneficiariosDireto"`
	BeneficiariosIndireto int                     `json:"beneficiariosIndireto"`
	QtdOrganizacoes       int                     `json:"qtdOrganizacoes"`
	ProjetosODS           []int                   `json:"projetosODS"`
	Lei                   []CategoryCountResponse `json:"lei"`
	Segmento              []CategoryCountResponse `json:"segmento"`
	IDProjects            []string                `json:"idProjects"`
}

func FromStateRollup(r entities.StateRollup) StateRollupResponse {
	return StateRollupResponse{
		ID:                    r.ID,
		NomeEstado:            r.NomeEstado,
		QtdProjetos:           r.QtdProjetos,
		QtdMunicipios:         r.QtdMunicipios,
		Municipios:            nonNil(r.Municipios),
		ValorTotal:            r.ValorTotal,
		MaiorAporte:           ContributionResponse{Nome: r.MaiorAporte.Nome, ValorAportado: r.MaiorAporte.ValorAportado},
		BeneficiariosDireto:   r.BeneficiariosDireto,
		BeneficiariosIndireto: r.BeneficiariosIndireto,
		QtdOrganizacoes:       r.QtdOrganizacoes,
		ProjetosODS:           nonNil(r.ProjetosODS),
		Lei:                   fromCounts(r.Lei),
		Segmento:              fromCounts(r.Segmento),
		IDProjects:            nonNil(r.IDProjects),
	}
}

type OverviewResponse struct {
	StateRollupResponse
	ProjetosPorEstado map[string]int `json:"projetosPorEstado"`
	EstadosAtendidos  int            `json:"estadosAtendidos"`
}

func FromOverview(o usecase.Overview) OverviewResponse {
	perState := o.ProjetosPorEstado
	if perState == nil {
		perState = map[string]int{}
	}
	return OverviewResponse{
		StateRollupResponse: FromStateRollup(o.Rollup),
		ProjetosPorEstado:   perState,
		EstadosAtendidos:    o.EstadosAtendidos,
	}
}

func fromCounts(list []entities.CategoryCount) []CategoryCountResponse {
	out := make([]CategoryCountResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CategoryCountResponse{Nome: c.Nome, QtdProjetos: c.QtdProjetos})
	}
	return out
}
