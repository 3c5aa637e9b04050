// Package catalog holds the categorical reference data of the registration
// and follow-up forms: the index -> name tables for laws, segments, scopes,
// SDG goals and audiences, plus the table of Brazilian federative units.
package catalog

import "strings"

// Item is one entry of a reference table. Forms submit the ID, documents
// store the Nome.
type Item struct {
	ID   int
	Nome string
}

var Ambitos = []Item{
	{0, "Nacional"},
	{1, "Estadual"},
	{2, "Municipal"},
}

var Segmentos = []Item{
	{0, "Cultura"},
	{1, "Esporte"},
	{2, "Pessoa Idosa"},
	{3, "Criança e Adolescente"},
	{4, "Saúde"},
}

var Leis = []Item{
	{0, "Lei de Incentivo à Cultura"},
	{1, "PROAC - Programa de Ação Cultural"},
	{2, "FIA - Lei Fundo para a Infância e Adolescência"},
	{3, "LIE - Lei de Incentivo ao Esporte"},
	{4, "Lei da Pessoa Idosa"},
	{5, "Pronas - Programa Nacional de Apoio à Atenção da Saúde da Pessoa com Deficiência"},
	{6, "Pronon - Programa Nacional de Apoio à Atenção Oncológica"},
	{7, "Promac - Programa de Incentivo à Cultura do Município de São Paulo"},
	{8, "ICMS - MG Imposto sobre Circulação de Mercadoria e Serviços"},
	{9, "ICMS - RJ Imposto sobre Circulação de Mercadoria e Serviços"},
	{10, "PIE - Lei Paulista de Incentivo ao Esporte"},
}

// Publicos ends with an empty slot that stands for the free-text "other" audience.
var Publicos = []Item{
	{0, "Crianças"},
	{1, "Adolescentes"},
	{2, "Jovens"},
	{3, "Adultos"},
	{4, "Idosos"},
	{5, ""},
}

// ODS lists the 17 SDG goals; ID 0 is ODS 1.
var ODS = []Item{
	{0, "Erradicar a pobreza"},
	{1, "Fome zero e agricultura sustentável"},
	{2, "Saúde e bem-estar"},
	{3, "Educação de qualidade"},
	{4, "Igualdade de gênero"},
	{5, "Água potável e saneamento"},
	{6, "Energia limpa e acessível"},
	{7, "Trabalho decente e crescimento econômico"},
	{8, "Indústria, inovação e infraestrutura"},
	{9, "Redução das desigualdades"},
	{10, "Cidades e comunidades sustentáveis"},
	{11, "Consumo e produção responsáveis"},
	{12, "Combate às mudanças climáticas"},
	{13, "Vida na água"},
	{14, "Vida terrestre"},
	{15, "Paz, justiça e instituições eficazes"},
	{16, "Parcerias e meios de implementação"},
}

// ItemName returns the name registered for idx, or "" when idx is out of range.
func ItemName(idx int, list []Item) string {
	for _, it := range list {
		if it.ID == idx {
			return it.Nome
		}
	}
	return ""
}

// ODSIDs translates a checkbox vector into the selected goal indices.
func ODSIDs(selected []bool) []int {
	ids := make([]int, 0, 3)
	for i, on := range selected {
		if on && i < len(ODS) {
			ids = append(ids, i)
		}
	}
	return ids
}

// AudienceNames maps the audience checkboxes to names. The empty slot is
// replaced by other (trimmed) and dropped when other is blank.
func AudienceNames(selected []bool, other string) []string {
	names := make([]string, 0, len(selected))
	for i, on := range selected {
		if !on || i >= len(Publicos) {
			continue
		}
		name := Publicos[i].Nome
		if name == "" {
			name = strings.TrimSpace(other)
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// OtherAudienceIndex is the position of the free-text audience slot.
func OtherAudienceIndex() int {
	for _, it := range Publicos {
		if it.Nome == "" {
			return it.ID
		}
	}
	return -1
}

// LawAbbreviation derives a display abbreviation from a law name when no
// registered abbreviation exists: the text before the first "-".
func LawAbbreviation(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Não informada"
	}
	head, _, _ := strings.Cut(name, "-")
	return strings.TrimSpace(head)
}
