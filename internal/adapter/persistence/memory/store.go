// Package memory keeps every collection in process memory. It backs the unit
// tests and STORE_DRIVER=memory, with the same not-found, versioning and
// cascading-delete semantics as the DynamoDB repositories.
package memory

import (
	"sort"
	"sync"

	"painel_incentivos/internal/domain/entities"
)

type Store struct {
	mu            sync.RWMutex
	projects      map[string]entities.Project
	registrations map[string]entities.RegistrationForm
	followUps     map[string]entities.FollowUpForm
	rollups       map[string]entities.StateRollup
	laws          map[string]entities.Law
	associations  map[string]entities.Association
}

func NewStore() *Store {
	return &Store{
		projects:      map[string]entities.Project{},
		registrations: map[string]entities.RegistrationForm{},
		followUps:     map[string]entities.FollowUpForm{},
		rollups:       map[string]entities.StateRollup{},
		laws:          map[string]entities.Law{},
		associations:  map[string]entities.Association{},
	}
}

func cloneProject(p entities.Project) entities.Project {
	out := p
	out.Estados = append([]string(nil), p.Estados...)
	out.Municipios = append([]string(nil), p.Municipios...)
	out.Empresas = append([]entities.Sponsor(nil), p.Empresas...)
	out.Notificacoes = append([]entities.FollowUpReminder(nil), p.Notificacoes...)
	if p.DataAprovado != nil {
		t := *p.DataAprovado
		out.DataAprovado = &t
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
