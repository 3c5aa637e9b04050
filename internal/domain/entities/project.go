package entities

import "time"

// ProjectStatus represents the approval state of a project.
type ProjectStatus string

const (
	ProjectStatusPendente  ProjectStatus = "pendente"
	ProjectStatusAprovado  ProjectStatus = "aprovado"
	ProjectStatusReprovado ProjectStatus = "reprovado"
)

// Sponsor is a corporate sponsor linked to a project.
type Sponsor struct {
	Nome          string  `json:"nome"`
	ValorAportado float64 `json:"valorAportado"`
}

// FollowUpReminder is one of the follow-up notifications scheduled on approval.
//
// Period is "p3", "p7" or "p10" (months after approval).
type FollowUpReminder struct {
	Period       string    `json:"period"`
	DataAgendada time.Time `json:"dataAgendada"`
	Enviado      bool      `json:"enviado"`
}

// Project is one funded/candidate initiative (collection "projetos").
//
// Storage model (DynamoDB):
//   - PK: id
//
// Estados/Municipios always mirror the form referenced by UltimoFormulario,
// which is the registration form until the first follow-up form supersedes it.
type Project struct {
	ID               string             `json:"id"`
	Nome             string             `json:"nome"`
	Instituicao      string             `json:"instituicao"`
	Status           ProjectStatus      `json:"status"`
	Ativo            bool               `json:"ativo"`
	Compliance       bool               `json:"compliance"`
	Estados          []string           `json:"estados"`
	Municipios       []string           `json:"municipios"`
	Lei              string             `json:"lei"`
	ValorAprovado    float64            `json:"valorAprovado"`
	Empresas         []Sponsor          `json:"empresas"`
	Indicacao        string             `json:"indicacao"`
	UltimoFormulario string             `json:"ultimoFormulario"`
	DataAprovado     *time.Time         `json:"dataAprovado,omitempty"`
	Notificacoes     []FollowUpReminder `json:"notificacoes,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// Counts reports whether the project contributes to the state rollups.
func (p Project) Counts() bool {
	return p.Ativo && p.Status == ProjectStatusAprovado
}

// ReminderPeriods are the follow-up reminders scheduled on approval, in months.
var ReminderPeriods = []int{3, 7, 10}
