package rollup

import (
	"math/rand"
	"testing"

	"painel_incentivos/internal/domain/catalog"
	"painel_incentivos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocator map[string]string

func (f fakeLocator) StateOf(m string) (string, bool) {
	st, ok := f[m]
	return st, ok
}

var testLocator = fakeLocator{
	"Campinas":       "São Paulo",
	"Santos":         "São Paulo",
	"Belo Horizonte": "Minas Gerais",
	"Uberlândia":     "Minas Gerais",
	"Rio Branco":     "Acre",
}

func culturaSP() entities.ProjectSnapshot {
	return entities.ProjectSnapshot{
		ProjectID:            "P1",
		Nome:                 "Orquestra Jovem",
		Instituicao:          "Instituto X",
		Lei:                  "Lei de Incentivo à Cultura",
		Segmento:             "Cultura",
		Estados:              []string{"São Paulo"},
		Municipios:           []string{"Campinas"},
		ODS:                  []int{3, 4},
		BeneficiariosDiretos: 50,
		ValorAprovado:        1000,
	}
}

func assertInvariants(t *testing.T, r entities.StateRollup) {
	t.Helper()
	require.Len(t, r.ProjetosODS, entities.SDGSlots)
	assert.GreaterOrEqual(t, r.QtdProjetos, 0)
	assert.GreaterOrEqual(t, r.QtdOrganizacoes, 0)
	assert.GreaterOrEqual(t, r.BeneficiariosDireto, 0)
	assert.GreaterOrEqual(t, r.BeneficiariosIndireto, 0)
	assert.GreaterOrEqual(t, r.ValorTotal, 0.0)
	for i, v := range r.ProjetosODS {
		assert.GreaterOrEqual(t, v, 0, "ods slot %d", i)
	}
	for _, c := range append(append([]entities.CategoryCount{}, r.Lei...), r.Segmento...) {
		assert.GreaterOrEqual(t, c.QtdProjetos, 0, c.Nome)
	}
	seen := map[string]bool{}
	for _, m := range r.Municipios {
		assert.False(t, seen[m], "duplicate municipality %s", m)
		seen[m] = true
	}
	assert.Equal(t, len(r.Municipios), r.QtdMunicipios)
}

func TestEmpty(t *testing.T) {
	r := Empty("Acre")
	assert.Equal(t, "acre", r.ID)
	assert.Equal(t, make([]int, 17), r.ProjetosODS)
	assert.Empty(t, r.Municipios)
	assert.NotNil(t, r.Municipios)
	assertInvariants(t, r)
}

func TestNormalize(t *testing.T) {
	r := entities.StateRollup{
		NomeEstado:          "Acre",
		QtdProjetos:         -2,
		Municipios:          []string{"Rio Branco", "Rio Branco", "Xapuri"},
		QtdMunicipios:       7,
		ProjetosODS:         []int{1, -1},
		BeneficiariosDireto: -5,
		Lei:                 []entities.CategoryCount{{Nome: "Lei da Pessoa Idosa", QtdProjetos: -1}},
	}
	out := Normalize(r)
	assertInvariants(t, out)
	assert.Equal(t, []string{"Rio Branco", "Xapuri"}, out.Municipios)
	assert.Equal(t, 1, out.ProjetosODS[0])
	assert.Equal(t, 0, out.ProjetosODS[1])
	assert.Equal(t, 3, len(r.Municipios), "input must not be mutated")
}

func TestDiffStates(t *testing.T) {
	d := DiffStates([]string{"São Paulo", "Acre"}, []string{"Sao Paulo", "Minas Gerais", "Minas Gerais"})
	assert.Equal(t, []string{"Acre"}, d.Removed)
	assert.Equal(t, []string{"Minas Gerais"}, d.Added)
	assert.Equal(t, []string{"São Paulo"}, d.Persisted)
}

func TestMunicipalitiesIn(t *testing.T) {
	s := entities.ProjectSnapshot{Estados: []string{"São Paulo", "Minas Gerais"}, Municipios: []string{"Campinas", "Uberlândia", "Desconhecida", "Campinas"}}
	assert.Equal(t, []string{"Campinas", "Desconhecida"}, MunicipalitiesIn("São Paulo", s, testLocator))
	assert.Equal(t, []string{"Uberlândia", "Desconhecida"}, MunicipalitiesIn("Minas Gerais", s, testLocator))
	assert.Len(t, MunicipalitiesIn("Minas Gerais", s, nil), 3)
}

func TestApplyAddedThenRemovedRoundTrip(t *testing.T) {
	base := Empty("São Paulo")
	other := culturaSP()
	other.ProjectID = "P0"
	other.Municipios = []string{"Santos", "Campinas"}
	base = ApplyAdded(base, other, testLocator)

	s := culturaSP()
	s.BeneficiariosIndiretos = 12
	s.ODS = []int{0, 16}

	added := ApplyAdded(base, s, testLocator)
	assertInvariants(t, added)
	assert.Equal(t, base.QtdProjetos+1, added.QtdProjetos)
	assert.Equal(t, base.BeneficiariosDireto+50, added.BeneficiariosDireto)
	assert.Equal(t, 1, added.ProjetosODS[16], "goal 16 maps to slot 16")
	assert.Contains(t, added.IDProjects, "P1")

	back := ApplyRemoved(added, s, testLocator)
	assertInvariants(t, back)
	assert.Equal(t, base.QtdProjetos, back.QtdProjetos)
	assert.Equal(t, base.QtdOrganizacoes, back.QtdOrganizacoes)
	assert.Equal(t, base.QtdMunicipios, back.QtdMunicipios)
	assert.Equal(t, base.Municipios, back.Municipios, "Campinas is still covered by P0")
	assert.Equal(t, base.BeneficiariosDireto, back.BeneficiariosDireto)
	assert.Equal(t, base.BeneficiariosIndireto, back.BeneficiariosIndireto)
	assert.Equal(t, base.ValorTotal, back.ValorTotal)
	assert.Equal(t, base.ProjetosODS, back.ProjetosODS)
	assert.Equal(t, entities.CountOf(base.Lei, s.Lei), entities.CountOf(back.Lei, s.Lei))
	assert.Equal(t, entities.CountOf(base.Segmento, s.Segmento), entities.CountOf(back.Segmento, s.Segmento))
	assert.Equal(t, base.IDProjects, back.IDProjects)
}

func TestApplyRemovedFloorsAtZero(t *testing.T) {
	r := Empty("Acre")
	s := culturaSP()
	s.Municipios = []string{"Rio Branco"}
	out := ApplyRemoved(ApplyRemoved(r, s, testLocator), s, testLocator)
	assertInvariants(t, out)
	assert.Equal(t, 0, out.QtdProjetos)
	assert.Equal(t, 0, out.BeneficiariosDireto)
	assert.Equal(t, 0, entities.CountOf(out.Lei, s.Lei))
}

func TestApplyPersisted(t *testing.T) {
	prev := culturaSP()
	r := ApplyAdded(Empty("São Paulo"), prev, testLocator)

	next := culturaSP()
	next.Estados = []string{"São Paulo", "Minas Gerais"}
	next.Municipios = []string{"Santos", "Belo Horizonte"}
	next.BeneficiariosDiretos = 80
	next.Segmento = "Esporte"
	next.Lei = "LIE - Lei de Incentivo ao Esporte"
	next.ODS = []int{4, 9}

	out := ApplyPersisted(r, prev, next, testLocator)
	assertInvariants(t, out)
	assert.Equal(t, 80, out.BeneficiariosDireto)
	assert.Equal(t, 1, out.QtdProjetos)
	assert.Equal(t, 0, entities.CountOf(out.Segmento, "Cultura"))
	assert.Equal(t, 1, entities.CountOf(out.Segmento, "Esporte"))
	assert.Equal(t, 0, entities.CountOf(out.Lei, prev.Lei))
	assert.Equal(t, 1, entities.CountOf(out.Lei, next.Lei))
	assert.Equal(t, 0, out.ProjetosODS[3])
	assert.Equal(t, 1, out.ProjetosODS[4], "goal kept in both snapshots is untouched")
	assert.Equal(t, 1, out.ProjetosODS[9])
	assert.Equal(t, []string{"Santos"}, out.Municipios)
}

func TestApplyPersistedNegativeDelta(t *testing.T) {
	prev := culturaSP()
	r := ApplyAdded(Empty("São Paulo"), prev, testLocator)
	next := culturaSP()
	next.BeneficiariosDiretos = 20
	out := ApplyPersisted(r, prev, next, testLocator)
	assert.Equal(t, 20, out.BeneficiariosDireto)
}

func TestDeltaSequencesStayNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	laws := []string{catalog.Leis[0].Nome, catalog.Leis[3].Nome}
	segs := []string{"Cultura", "Saúde"}
	munis := []string{"Campinas", "Santos", "Belo Horizonte", "Avulsa"}

	randomSnapshot := func() entities.ProjectSnapshot {
		return entities.ProjectSnapshot{
			ProjectID:              "P" + string(rune('A'+rng.Intn(4))),
			Instituicao:            "Inst",
			Lei:                    laws[rng.Intn(len(laws))],
			Segmento:               segs[rng.Intn(len(segs))],
			Municipios:             []string{munis[rng.Intn(len(munis))], munis[rng.Intn(len(munis))]},
			ODS:                    []int{rng.Intn(17), rng.Intn(17)},
			BeneficiariosDiretos:   rng.Intn(100),
			BeneficiariosIndiretos: rng.Intn(100),
			ValorAprovado:          float64(rng.Intn(1000)),
		}
	}

	r := Empty("São Paulo")
	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			r = ApplyAdded(r, randomSnapshot(), testLocator)
		case 1:
			r = ApplyRemoved(r, randomSnapshot(), testLocator)
		default:
			r = ApplyPersisted(r, randomSnapshot(), randomSnapshot(), testLocator)
		}
		assertInvariants(t, r)
	}
}

func TestBuilder(t *testing.T) {
	t.Run("registration scenario", func(t *testing.T) {
		b := NewBuilder("São Paulo", testLocator)
		b.Add(culturaSP())
		r := b.Build()
		assertInvariants(t, r)
		assert.Equal(t, "sao_paulo", r.ID)
		assert.Equal(t, 1, r.QtdProjetos)
		assert.Equal(t, 50, r.BeneficiariosDireto)
		assert.Equal(t, 1, r.ProjetosODS[3])
		assert.Equal(t, 1, r.ProjetosODS[4])
		assert.Equal(t, []entities.CategoryCount{{Nome: "Cultura", QtdProjetos: 1}}, r.Segmento)
		assert.Equal(t, entities.Contribution{Nome: "Orquestra Jovem", ValorAportado: 1000}, r.MaiorAporte)
		assert.Equal(t, []string{"Campinas"}, r.Municipios)
	})

	t.Run("first maximum wins ties", func(t *testing.T) {
		a, c := culturaSP(), culturaSP()
		a.ProjectID, a.Nome = "A", "Primeiro"
		c.ProjectID, c.Nome = "B", "Segundo"
		b := NewBuilder("São Paulo", testLocator)
		b.Add(a)
		b.Add(c)
		r := b.Build()
		assert.Equal(t, "Primeiro", r.MaiorAporte.Nome)
		assert.Equal(t, 1, r.QtdOrganizacoes, "same institution counted once")
		assert.Equal(t, 2000.0, r.ValorTotal)
	})

	t.Run("empty", func(t *testing.T) {
		r := NewBuilder("Acre", nil).Build()
		assert.Equal(t, Empty("Acre"), r)
	})
}

func TestCombine(t *testing.T) {
	sp := ApplyAdded(Empty("São Paulo"), culturaSP(), testLocator)
	sp.MaiorAporte = entities.Contribution{Nome: "Orquestra Jovem", ValorAportado: 1000}
	mgSnap := culturaSP()
	mgSnap.Municipios = []string{"Belo Horizonte"}
	mg := ApplyAdded(Empty("Minas Gerais"), mgSnap, testLocator)
	mg.MaiorAporte = entities.Contribution{Nome: "Orquestra Jovem", ValorAportado: 500}
	ac := Empty("Acre")
	ac.Lei = []entities.CategoryCount{{Nome: "Lei da Pessoa Idosa", QtdProjetos: 3}}
	ac.QtdProjetos = 3

	assert.Equal(t, Combine(sp, mg), Combine(mg, sp))
	assert.Equal(t, Combine(Combine(sp, mg), ac), Combine(sp, Combine(mg, ac)))

	all := CombineAll([]entities.StateRollup{sp, mg, ac})
	assertInvariants(t, all)
	assert.Equal(t, AllStatesName, all.NomeEstado)
	assert.Equal(t, 5, all.QtdProjetos)
	assert.Equal(t, 2000.0, all.ValorTotal)
	assert.Equal(t, 1000.0, all.MaiorAporte.ValorAportado)
	assert.Equal(t, 2, all.ProjetosODS[3])
	assert.Equal(t, []string{"P1", "P1"}, all.IDProjects)
	assert.Equal(t, []string{"Belo Horizonte", "Campinas"}, all.Municipios)
	assert.Equal(t, 3, entities.CountOf(all.Lei, "Lei da Pessoa Idosa"))
}

func TestCombineAllEmpty(t *testing.T) {
	r := CombineAll(nil)
	assert.Equal(t, AllStatesName, r.NomeEstado)
	assert.Len(t, r.ProjetosODS, 17)
}

func TestSubtractCorrectsDoubleCount(t *testing.T) {
	s := culturaSP()
	s.ValorAprovado = 500
	sp := ApplyAdded(Empty("São Paulo"), s, testLocator)
	mg := ApplyAdded(Empty("Minas Gerais"), s, testLocator)
	all := Combine(sp, mg)
	require.Equal(t, 1000.0, all.ValorTotal)
	require.Equal(t, 2, all.QtdProjetos)

	mult := ProjectMultiplicity(all.IDProjects)
	fixed := Subtract(all, s, mult["P1"]-1, 0)
	assert.Equal(t, 500.0, fixed.ValorTotal)
	assert.Equal(t, 1, fixed.QtdProjetos)
	assert.Equal(t, 50, fixed.BeneficiariosDireto)
	assert.Equal(t, 1, fixed.ProjetosODS[3])
	assert.Equal(t, 1, entities.CountOf(fixed.Segmento, "Cultura"))
	assert.Equal(t, 2, fixed.QtdOrganizacoes, "no sponsors listed, nothing to subtract")
	assert.Equal(t, []string{"P1"}, DistinctIDs(fixed.IDProjects))

	assert.Equal(t, Normalize(all), Subtract(all, s, 0, 0))
}

func TestSameContent(t *testing.T) {
	a := Empty("Bahia")
	b := a.Clone()
	b.Version = 7
	b.Municipios = nil
	b.MunicipiosRef = nil
	assert.True(t, SameContent(a, b), "version and nil-vs-empty do not matter")

	b.QtdProjetos = 1
	assert.False(t, SameContent(a, b))
}
