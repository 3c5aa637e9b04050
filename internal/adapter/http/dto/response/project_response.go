package response

import (
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase"
)

type SponsorResponse struct {
	Nome          string  `json:"nome"`
	ValorAportado float64 `json:"valorAportado"`
}

type ReminderResponse struct {
	Period       string    `json:"period"`
	DataAgendada time.Time `json:"dataAgendada"`
	Enviado      bool      `json:"enviado"`
}

type ProjectResponse struct {
	ID               string             `json:"id"`
	Nome             string             `json:"nome"`
	Instituicao      string             `json:"instituicao"`
	Status           string             `json:"status"`
	Ativo            bool               `json:"ativo"`
	Compliance       bool               `json:"compliance"`
	Estados          []string           `json:"estados"`
	Municipios       []string           `json:"municipios"`
	Lei              string             `json:"lei"`
	LeiSigla         string             `json:"leiSigla,omitempty"`
	ValorAprovado    float64            `json:"valorAprovado"`
	Empresas         []SponsorResponse  `json:"empresas"`
	Indicacao        string             `json:"indicacao"`
	UltimoFormulario string             `json:"ultimoFormulario"`
	DataAprovado     *time.Time         `json:"dataAprovado,omitempty"`
	Notificacoes     []ReminderResponse `json:"notificacoes,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func FromProject(p entities.Project) ProjectResponse {
	res := ProjectResponse{
		ID:               p.ID,
		Nome:             p.Nome,
		Instituicao:      p.Instituicao,
		Status:           string(p.Status),
		Ativo:            p.Ativo,
		Compliance:       p.Compliance,
		Estados:          nonNil(p.Estados),
		Municipios:       nonNil(p.Municipios),
		Lei:              p.Lei,
		ValorAprovado:    p.ValorAprovado,
		Empresas:         make([]SponsorResponse, 0, len(p.Empresas)),
		Indicacao:        p.Indicacao,
		UltimoFormulario: p.UltimoFormulario,
		DataAprovado:     p.DataAprovado,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	for _, s := range p.Empresas {
		res.Empresas = append(res.Empresas, SponsorResponse{Nome: s.Nome, ValorAportado: s.ValorAportado})
	}
	for _, n := range p.Notificacoes {
		res.Notificacoes = append(res.Notificacoes, ReminderResponse{Period: n.Period, DataAgendada: n.DataAgendada, Enviado: n.Enviado})
	}
	return res
}

func FromProjectView(v usecase.ProjectView) ProjectResponse {
	res := FromProject(v.Project)
	res.LeiSigla = v.LeiSigla
	return res
}

func FromProjectViews(list []usecase.ProjectView) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromProjectView(v))
	}
	return out
}

type FollowUpFormResponse struct {
	ID           string `json:"id"`
	ProjetoID    string `json:"projetoID"`
	DataResposta string `json:"dataResposta"`
}

func FromFollowUpForm(f entities.FollowUpForm) FollowUpFormResponse {
	return FollowUpFormResponse{ID: f.ID, ProjetoID: f.ProjetoID, DataResposta: f.DataResposta}
}

type LawResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
}

func FromLaw(l entities.Law) LawResponse {
	return LawResponse{ID: l.ID, Nome: l.Nome, Sigla: l.Sigla}
}

func FromLaws(list []entities.Law) []LawResponse {
	out := make([]LawResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromLaw(l))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
