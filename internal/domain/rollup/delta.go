package rollup

import (
	"painel_incentivos/internal/domain/catalog"
	"painel_incentivos/internal/domain/entities"
)

// StateDiff splits the states of two snapshots. Names are compared by slug and
// reported as spelled in the snapshot they come from.
type StateDiff struct {
	Removed   []string
	Added     []string
	Persisted []string
}

func DiffStates(prev, next []string) StateDiff {
	oldSet := slugSet(prev)
	newSet := slugSet(next)
	var d StateDiff
	for _, s := range dedupeStates(prev) {
		if newSet[catalog.Slugify(s)] {
			d.Persisted = append(d.Persisted, s)
		} else {
			d.Removed = append(d.Removed, s)
		}
	}
	for _, s := range dedupeStates(next) {
		if !oldSet[catalog.Slugify(s)] {
			d.Added = append(d.Added, s)
		}
	}
	return d
}

// ApplyAdded adds the effect of a project that starts operating in r's state.
func ApplyAdded(r entities.StateRollup, s entities.ProjectSnapshot, loc Locator) entities.StateRollup {
	out := Normalize(r)
	out.QtdProjetos++
	out.QtdOrganizacoes++
	out.BeneficiariosDireto += s.BeneficiariosDiretos
	out.BeneficiariosIndireto += s.BeneficiariosIndiretos
	out.ValorTotal += s.ValorAprovado
	out.Lei = bump(out.Lei, s.Lei, 1)
	out.Segmento = bump(out.Segmento, s.Segmento, 1)
	out.ProjetosODS = bumpODS(out.ProjetosODS, s.ODS, 1)
	out = refMunicipios(out, MunicipalitiesIn(out.NomeEstado, s, loc), 1)
	if s.ProjectID != "" && !contains(out.IDProjects, s.ProjectID) {
		out.IDProjects = append(out.IDProjects, s.ProjectID)
	}
	return floor(out)
}

// ApplyRemoved removes the effect of a project that stopped operating in r's
// state. Every tally is floored at 0.
func ApplyRemoved(r entities.StateRollup, s entities.ProjectSnapshot, loc Locator) entities.StateRollup {
	out := Normalize(r)
	out.QtdProjetos--
	out.QtdOrganizacoes--
	out.BeneficiariosDireto -= s.BeneficiariosDiretos
	out.BeneficiariosIndireto -= s.BeneficiariosIndiretos
	out.ValorTotal -= s.ValorAprovado
	out.Lei = bump(out.Lei, s.Lei, -1)
	out.Segmento = bump(out.Segmento, s.Segmento, -1)
	out.ProjetosODS = bumpODS(out.ProjetosODS, s.ODS, -1)
	out = refMunicipios(out, MunicipalitiesIn(out.NomeEstado, s, loc), -1)
	out.IDProjects = without(out.IDProjects, s.ProjectID)
	return floor(out)
}

// ApplyPersisted applies the difference between two snapshots of a project
// that keeps operating in r's state. SDG goals present in both snapshots are
// left untouched.
func ApplyPersisted(r entities.StateRollup, prev, next entities.ProjectSnapshot, loc Locator) entities.StateRollup {
	out := Normalize(r)
	out.BeneficiariosDireto += next.BeneficiariosDiretos - prev.BeneficiariosDiretos
	out.BeneficiariosIndireto += next.BeneficiariosIndiretos - prev.BeneficiariosIndiretos
	out.ValorTotal += next.ValorAprovado - prev.ValorAprovado

	if prev.Lei != next.Lei {
		out.Lei = bump(out.Lei, prev.Lei, -1)
		out.Lei = bump(out.Lei, next.Lei, 1)
	}
	if prev.Segmento != next.Segmento {
		out.Segmento = bump(out.Segmento, prev.Segmento, -1)
		out.Segmento = bump(out.Segmento, next.Segmento, 1)
	}

	oldGoals, newGoals := uniqueGoals(prev.ODS), uniqueGoals(next.ODS)
	out.ProjetosODS = bumpODS(out.ProjetosODS, minusInts(oldGoals, newGoals), -1)
	out.ProjetosODS = bumpODS(out.ProjetosODS, minusInts(newGoals, oldGoals), 1)

	oldM := MunicipalitiesIn(out.NomeEstado, prev, loc)
	newM := MunicipalitiesIn(out.NomeEstado, next, loc)
	out = refMunicipios(out, minusStrings(oldM, newM), -1)
	out = refMunicipios(out, minusStrings(newM, oldM), 1)

	if next.ProjectID != "" && !contains(out.IDProjects, next.ProjectID) {
		out.IDProjects = append(out.IDProjects, next.ProjectID)
	}
	return floor(out)
}

func slugSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[catalog.Slugify(n)] = true
	}
	return out
}

func dedupeStates(names []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(names))
	for _, n := range names {
		k := catalog.Slugify(n)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, n)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func without(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func minusStrings(a, b []string) []string {
	out := make([]string, 0, len(a))
	for _, x := range a {
		if !contains(b, x) {
			out = append(out, x)
		}
	}
	return out
}

func minusInts(a, b []int) []int {
	out := make([]int, 0, len(a))
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			out = append(out, x)
		}
	}
	return out
}
