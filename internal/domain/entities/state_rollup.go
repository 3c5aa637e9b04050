package entities

// SDGSlots is the number of UN Sustainable Development Goals tracked per rollup.
const SDGSlots = 17

// CategoryCount is a per-name project tally (law or segment).
type CategoryCount struct {
	Nome        string `json:"nome"`
	QtdProjetos int    `json:"qtdProjetos"`
}

// Contribution is the largest single-project contribution of a rollup.
type Contribution struct {
	Nome          string  `json:"nome"`
	ValorAportado float64 `json:"valorAportado"`
}

// StateRollup is the per-state aggregate of all active and approved projects
// (collection "dadosEstados", keyed by the slugified state name).
//
// Storage model (DynamoDB):
//   - PK: id (slug, e.g. "sao_paulo")
//   - version: optimistic concurrency counter, bumped on every write
//
// Invariants:
//   - every tally is >= 0
//   - Municipios has no duplicates and QtdMunicipios == len(Municipios)
//   - MunicipiosRef counts how many contributing projects cover each entry of
//     Municipios; a municipality leaves the set when its count reaches 0
//   - ProjetosODS has exactly SDGSlots entries
//   - IDProjects may list a project that also appears in other states' rollups
type StateRollup struct {
	ID                    string          `json:"id"`
	NomeEstado            string          `json:"nomeEstado"`
	QtdProjetos           int             `json:"qtdProjetos"`
	QtdMunicipios         int             `json:"qtdMunicipios"`
	Municipios            []string        `json:"municipios"`
	MunicipiosRef         map[string]int  `json:"municipiosRef"`
	ValorTotal            float64         `json:"valorTotal"`
	MaiorAporte           Contribution    `json:"maiorAporte"`
	BeneficiariosDireto   int             `json:"beneficiariosDireto"`
	BeneficiariosIndireto int             `json:"beneficiariosIndireto"`
	QtdOrganizacoes       int             `json:"qtdOrganizacoes"`
	ProjetosODS           []int           `json:"projetosODS"`
	Lei                   []CategoryCount `json:"lei"`
	Segmento              []CategoryCount `json:"segmento"`
	IDProjects            []string        `json:"idProjects"`
	Version               int64           `json:"version"`
}

// Clone returns a deep copy; the slices of the copy never alias r's.
func (r StateRollup) Clone() StateRollup {
	out := r
	out.Municipios = cloneSlice(r.Municipios)
	if r.MunicipiosRef != nil {
		out.MunicipiosRef = make(map[string]int, len(r.MunicipiosRef))
		for k, v := range r.MunicipiosRef {
			out.MunicipiosRef[k] = v
		}
	}
	out.ProjetosODS = cloneSlice(r.ProjetosODS)
	out.Lei = cloneSlice(r.Lei)
	out.Segmento = cloneSlice(r.Segmento)
	out.IDProjects = cloneSlice(r.IDProjects)
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// CountOf returns the tally registered for name in list (0 when absent).
func CountOf(list []CategoryCount, name string) int {
	for _, c := range list {
		if c.Nome == name {
			return c.QtdProjetos
		}
	}
	return 0
}
