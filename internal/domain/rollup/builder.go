package rollup

import (
	"sort"

	"painel_incentivos/internal/domain/entities"
)

// Builder accumulates project snapshots into a fresh rollup. Snapshots must
// be added in a stable order: the largest contribution only changes hands on
// a strictly greater value, so the first maximum added wins ties.
type Builder struct {
	r    entities.StateRollup
	orgs map[string]struct{}
	loc  Locator
}

func NewBuilder(state string, loc Locator) *Builder {
	return &Builder{r: Empty(state), orgs: map[string]struct{}{}, loc: loc}
}

func (b *Builder) Add(s entities.ProjectSnapshot) {
	b.r.QtdProjetos++
	b.r.ValorTotal += s.ValorAprovado
	b.r.BeneficiariosDireto += maxInt(s.BeneficiariosDiretos, 0)
	b.r.BeneficiariosIndireto += maxInt(s.BeneficiariosIndiretos, 0)
	if s.Instituicao != "" {
		b.orgs[s.Instituicao] = struct{}{}
	}
	if b.r.QtdProjetos == 1 || s.ValorAprovado > b.r.MaiorAporte.ValorAportado {
		b.r.MaiorAporte = entities.Contribution{Nome: s.Nome, ValorAportado: s.ValorAprovado}
	}
	b.r.Lei = bump(b.r.Lei, s.Lei, 1)
	b.r.Segmento = bump(b.r.Segmento, s.Segmento, 1)
	b.r.ProjetosODS = bumpODS(b.r.ProjetosODS, s.ODS, 1)
	b.r = refMunicipios(b.r, MunicipalitiesIn(b.r.NomeEstado, s, b.loc), 1)
	if s.ProjectID != "" && !contains(b.r.IDProjects, s.ProjectID) {
		b.r.IDProjects = append(b.r.IDProjects, s.ProjectID)
	}
}

func (b *Builder) Build() entities.StateRollup {
	out := b.r.Clone()
	out.QtdOrganizacoes = len(b.orgs)
	sort.Strings(out.IDProjects)
	return out
}
