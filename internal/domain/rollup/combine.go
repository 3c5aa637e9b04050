package rollup

import (
	"sort"

	"painel_incentivos/internal/domain/entities"
)

// AllStatesName is the NomeEstado of a rollup that merges different states.
const AllStatesName = "Todos"

// Combine merges two rollups. It is commutative and associative: tallies are
// summed, SDG slots added element-wise, laws and segments grouped by name,
// municipality sets unioned, project ids concatenated (multiplicity is kept
// for the double-count correction) and the largest contribution is the larger
// value, ties going to the smaller name.
func Combine(a, b entities.StateRollup) entities.StateRollup {
	a, b = Normalize(a), Normalize(b)
	out := entities.StateRollup{
		NomeEstado:            a.NomeEstado,
		QtdProjetos:           a.QtdProjetos + b.QtdProjetos,
		ValorTotal:            a.ValorTotal + b.ValorTotal,
		MaiorAporte:           maxContribution(a.MaiorAporte, b.MaiorAporte),
		BeneficiariosDireto:   a.BeneficiariosDireto + b.BeneficiariosDireto,
		BeneficiariosIndireto: a.BeneficiariosIndireto + b.BeneficiariosIndireto,
		QtdOrganizacoes:       a.QtdOrganizacoes + b.QtdOrganizacoes,
		ProjetosODS:           make([]int, entities.SDGSlots),
		Lei:                   mergeCategories(a.Lei, b.Lei),
		Segmento:              mergeCategories(a.Segmento, b.Segmento),
		MunicipiosRef:         map[string]int{},
	}
	if a.NomeEstado != b.NomeEstado {
		out.NomeEstado = AllStatesName
	}
	if a.ID == b.ID {
		out.ID = a.ID
	}
	for i := range out.ProjetosODS {
		out.ProjetosODS[i] = a.ProjetosODS[i] + b.ProjetosODS[i]
	}
	for m, n := range a.MunicipiosRef {
		out.MunicipiosRef[m] += n
	}
	for m, n := range b.MunicipiosRef {
		out.MunicipiosRef[m] += n
	}
	out = syncMunicipios(out)
	out.IDProjects = append(append([]string{}, a.IDProjects...), b.IDProjects...)
	sort.Strings(out.IDProjects)
	return out
}

// CombineAll folds rollups with Combine. An empty input yields the zeroed
// "all states" rollup.
func CombineAll(list []entities.StateRollup) entities.StateRollup {
	if len(list) == 0 {
		out := Empty(AllStatesName)
		out.ID = ""
		return out
	}
	acc := Normalize(list[0])
	for _, r := range list[1:] {
		acc = Combine(acc, r)
	}
	return acc
}

// Subtract removes times copies of a project's contribution from r, floored
// at 0. sponsors approximates the organizations the project added to the
// per-state institution counts. Project ids are left to the caller.
func Subtract(r entities.StateRollup, s entities.ProjectSnapshot, times, sponsors int) entities.StateRollup {
	out := Normalize(r)
	if times <= 0 {
		return out
	}
	out.QtdProjetos -= times
	out.ValorTotal -= float64(times) * s.ValorAprovado
	out.QtdOrganizacoes -= times * sponsors
	out.BeneficiariosDireto -= times * s.BeneficiariosDiretos
	out.BeneficiariosIndireto -= times * s.BeneficiariosIndiretos
	out.Lei = bump(out.Lei, s.Lei, -times)
	out.Segmento = bump(out.Segmento, s.Segmento, -times)
	out.ProjetosODS = bumpODS(out.ProjetosODS, s.ODS, -times)
	return floor(out)
}

// DistinctIDs returns ids without repetitions, sorted.
func DistinctIDs(ids []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func maxContribution(a, b entities.Contribution) entities.Contribution {
	switch {
	case a.ValorAportado > b.ValorAportado:
		return a
	case b.ValorAportado > a.ValorAportado:
		return b
	case a.Nome <= b.Nome:
		return a
	default:
		return b
	}
}

func mergeCategories(a, b []entities.CategoryCount) []entities.CategoryCount {
	out := append([]entities.CategoryCount{}, a...)
	for _, c := range b {
		switch {
		case c.Nome == "":
		case hasCategory(out, c.Nome):
			out = bump(out, c.Nome, c.QtdProjetos)
		default:
			out = append(out, c)
		}
	}
	sortCategories(out)
	return out
}

func hasCategory(list []entities.CategoryCount, name string) bool {
	for _, c := range list {
		if c.Nome == name {
			return true
		}
	}
	return false
}
