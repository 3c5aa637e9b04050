package request

import (
	"strings"

	"painel_incentivos/internal/domain/entities"
)

type ActiveRequest struct {
	Ativo *bool `json:"ativo" binding:"required"`
}

type SponsorRequest struct {
	Nome          string  `json:"nome" binding:"required,max=100"`
	ValorAportado float64 `json:"valorAportado" binding:"gte=0"`
}

// SponsorsRequest replaces the whole sponsor list of a project; an empty
// list unlinks every sponsor.
type SponsorsRequest struct {
	Empresas []SponsorRequest `json:"empresas" binding:"dive"`
}

func (r SponsorsRequest) ToEntities() []entities.Sponsor {
	out := make([]entities.Sponsor, 0, len(r.Empresas))
	for _, s := range r.Empresas {
		out = append(out, entities.Sponsor{Nome: strings.TrimSpace(s.Nome), ValorAportado: s.ValorAportado})
	}
	return out
}

type LawRequest struct {
	Nome  string `json:"nome" binding:"required,max=200"`
	Sigla string `json:"sigla" binding:"required,max=30"`
}
