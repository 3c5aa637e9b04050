// Package rollup implements the aggregation algebra behind the per-state
// dashboard documents: incremental deltas applied when a project's attributes
// change, the from-scratch builder used by the recompute path, and the
// combine/correct operations used when several states are read together.
//
// Every function takes and returns values; inputs are never mutated.
package rollup

import (
	"reflect"
	"sort"

	"painel_incentivos/internal/domain/catalog"
	"painel_incentivos/internal/domain/entities"
)

// Locator resolves the state a municipality belongs to.
type Locator interface {
	StateOf(municipio string) (string, bool)
}

// Empty returns the zeroed rollup of state.
func Empty(state string) entities.StateRollup {
	return entities.StateRollup{
		ID:            catalog.Slugify(state),
		NomeEstado:    state,
		Municipios:    []string{},
		MunicipiosRef: map[string]int{},
		ProjetosODS:   make([]int, entities.SDGSlots),
		Lei:           []entities.CategoryCount{},
		Segmento:      []entities.CategoryCount{},
		IDProjects:    []string{},
	}
}

// Normalize restores the document invariants on a rollup read from storage:
// 17 SDG slots, non-negative tallies, a duplicate-free municipality set that
// agrees with its reference counts.
func Normalize(r entities.StateRollup) entities.StateRollup {
	out := r.Clone()
	ods := make([]int, entities.SDGSlots)
	copy(ods, out.ProjetosODS)
	out.ProjetosODS = ods

	if out.MunicipiosRef == nil {
		out.MunicipiosRef = map[string]int{}
	}
	for _, m := range out.Municipios {
		if out.MunicipiosRef[m] <= 0 {
			out.MunicipiosRef[m] = 1
		}
	}
	out = syncMunicipios(out)

	if out.Lei == nil {
		out.Lei = []entities.CategoryCount{}
	}
	if out.Segmento == nil {
		out.Segmento = []entities.CategoryCount{}
	}
	if out.IDProjects == nil {
		out.IDProjects = []string{}
	}
	return floor(out)
}

// SameContent reports whether a and b hold the same aggregate, ignoring the
// document version.
func SameContent(a, b entities.StateRollup) bool {
	na, nb := Normalize(a), Normalize(b)
	na.Version, nb.Version = 0, 0
	return reflect.DeepEqual(na, nb)
}

// MunicipalitiesIn returns the municipalities of s that belong to state.
// A municipality the locator cannot resolve is attributed to every state of
// the snapshot.
func MunicipalitiesIn(state string, s entities.ProjectSnapshot, loc Locator) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(s.Municipios))
	for _, m := range s.Municipios {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		if loc != nil {
			if st, ok := loc.StateOf(m); ok && !catalog.SameState(st, state) {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// ProjectMultiplicity counts how many times each project id appears.
func ProjectMultiplicity(ids []string) map[string]int {
	out := make(map[string]int, len(ids))
	for _, id := range ids {
		out[id]++
	}
	return out
}

func bump(list []entities.CategoryCount, name string, delta int) []entities.CategoryCount {
	out := append([]entities.CategoryCount(nil), list...)
	if name == "" || delta == 0 {
		return out
	}
	for i := range out {
		if out[i].Nome == name {
			out[i].QtdProjetos = maxInt(out[i].QtdProjetos+delta, 0)
			return out
		}
	}
	if delta > 0 {
		out = append(out, entities.CategoryCount{Nome: name, QtdProjetos: delta})
		sortCategories(out)
	}
	return out
}

func bumpODS(ods []int, goals []int, delta int) []int {
	out := make([]int, entities.SDGSlots)
	copy(out, ods)
	for _, g := range uniqueGoals(goals) {
		out[g] = maxInt(out[g]+delta, 0)
	}
	return out
}

// uniqueGoals drops duplicates and indices outside 0..16.
func uniqueGoals(goals []int) []int {
	seen := map[int]bool{}
	out := make([]int, 0, len(goals))
	for _, g := range goals {
		if g < 0 || g >= entities.SDGSlots || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}

func refMunicipios(r entities.StateRollup, names []string, delta int) entities.StateRollup {
	if r.MunicipiosRef == nil {
		r.MunicipiosRef = map[string]int{}
	}
	for _, m := range names {
		n := r.MunicipiosRef[m] + delta
		if n <= 0 {
			delete(r.MunicipiosRef, m)
			continue
		}
		r.MunicipiosRef[m] = n
	}
	return syncMunicipios(r)
}

func syncMunicipios(r entities.StateRollup) entities.StateRollup {
	names := make([]string, 0, len(r.MunicipiosRef))
	for m, n := range r.MunicipiosRef {
		if n > 0 {
			names = append(names, m)
		} else {
			delete(r.MunicipiosRef, m)
		}
	}
	sort.Strings(names)
	r.Municipios = names
	r.QtdMunicipios = len(names)
	return r
}

func floor(r entities.StateRollup) entities.StateRollup {
	r.QtdProjetos = maxInt(r.QtdProjetos, 0)
	r.QtdOrganizacoes = maxInt(r.QtdOrganizacoes, 0)
	r.BeneficiariosDireto = maxInt(r.BeneficiariosDireto, 0)
	r.BeneficiariosIndireto = maxInt(r.BeneficiariosIndireto, 0)
	if r.ValorTotal < 0 {
		r.ValorTotal = 0
	}
	for i := range r.ProjetosODS {
		r.ProjetosODS[i] = maxInt(r.ProjetosODS[i], 0)
	}
	for i := range r.Lei {
		r.Lei[i].QtdProjetos = maxInt(r.Lei[i].QtdProjetos, 0)
	}
	for i := range r.Segmento {
		r.Segmento[i].QtdProjetos = maxInt(r.Segmento[i].QtdProjetos, 0)
	}
	return r
}

func sortCategories(list []entities.CategoryCount) {
	sort.Slice(list, func(i, j int) bool { return list[i].Nome < list[j].Nome })
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
