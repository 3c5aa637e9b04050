package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// State is a Brazilian federative unit.
type State struct {
	Nome string
	UF   string
	Slug string
}

var States = []State{
	{"Acre", "AC", "acre"},
	{"Alagoas", "AL", "alagoas"},
	{"Amapá", "AP", "amapa"},
	{"Amazonas", "AM", "amazonas"},
	{"Bahia", "BA", "bahia"},
	{"Ceará", "CE", "ceara"},
	{"Distrito Federal", "DF", "distrito_federal"},
	{"Espírito Santo", "ES", "espirito_santo"},
	{"Goiás", "GO", "goias"},
	{"Maranhão", "MA", "maranhao"},
	{"Mato Grosso", "MT", "mato_grosso"},
	{"Mato Grosso do Sul", "MS", "mato_grosso_do_sul"},
	{"Minas Gerais", "MG", "minas_gerais"},
	{"Pará", "PA", "para"},
	{"Paraíba", "PB", "paraiba"},
	{"Paraná", "PR", "parana"},
	{"Pernambuco", "PE", "pernambuco"},
	{"Piauí", "PI", "piaui"},
	{"Rio de Janeiro", "RJ", "rio_de_janeiro"},
	{"Rio Grande do Norte", "RN", "rio_grande_do_norte"},
	{"Rio Grande do Sul", "RS", "rio_grande_do_sul"},
	{"Rondônia", "RO", "rondonia"},
	{"Roraima", "RR", "roraima"},
	{"Santa Catarina", "SC", "santa_catarina"},
	{"São Paulo", "SP", "sao_paulo"},
	{"Sergipe", "SE", "sergipe"},
	{"Tocantins", "TO", "tocantins"},
}

// Slugify lowercases name, strips accents and replaces whitespace runs by "_".
// Slugify("São Paulo") == "sao_paulo".
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	return strings.Join(strings.Fields(strings.ToLower(plain)), "_")
}

// StateByName resolves a state by display name or slug, ignoring accents and case.
func StateByName(name string) (State, bool) {
	slug := Slugify(name)
	for _, s := range States {
		if s.Slug == slug {
			return s, true
		}
	}
	return State{}, false
}

func StateByUF(uf string) (State, bool) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	for _, s := range States {
		if s.UF == uf {
			return s, true
		}
	}
	return State{}, false
}

// SameState compares two state names by slug.
func SameState(a, b string) bool {
	return Slugify(a) == Slugify(b)
}
