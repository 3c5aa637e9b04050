package request

import (
	"regexp"
	"strings"
	"time"

	"painel_incentivos/internal/domain/catalog"
	"painel_incentivos/internal/domain/entities"
)

const dateLayout = "2006-01-02"

var cepPattern = regexp.MustCompile(`^\d{5}-\d{3}$`)

// RegistrationRequest is the payload of POST /v1/forms/cadastro. Select
// fields (segmento, lei) carry the index of the reference table entry and
// checkbox groups (publico, ods) carry one bool per entry.
type RegistrationRequest struct {
	UsuarioID             string   `json:"usuarioID"`
	Instituicao           string   `json:"instituicao" binding:"required,max=100"`
	CNPJ                  string   `json:"cnpj" binding:"required,cnpj"`
	RepresentanteLegal    string   `json:"representanteLegal" binding:"required,max=100"`
	Telefone              string   `json:"telefone" binding:"required,min=14,max=15"`
	EmailRepLegal         string   `json:"emailRepLegal" binding:"required,email,max=100"`
	Responsavel           string   `json:"responsavel" binding:"required,max=100"`
	EmailResponsavel      string   `json:"emailResponsavel" binding:"required,email,max=100"`
	CEP                   string   `json:"cep" binding:"required"`
	Endereco              string   `json:"endereco" binding:"required,max=200"`
	NumeroEndereco        int      `json:"numeroEndereco" binding:"gte=0"`
	Complemento           string   `json:"complemento" binding:"max=150"`
	Cidade                string   `json:"cidade" binding:"required"`
	Estado                string   `json:"estado" binding:"required"`
	NomeProjeto           string   `json:"nomeProjeto" binding:"required,max=150"`
	Website               string   `json:"website" binding:"max=500"`
	ValorAprovado         float64  `json:"valorAprovado" binding:"required,gt=0"`
	ValorApto             float64  `json:"valorApto" binding:"required,gt=0"`
	DataComeco            string   `json:"dataComeco" binding:"required,datetime=2006-01-02"`
	DataFim               string   `json:"dataFim" binding:"required,datetime=2006-01-02"`
	Banco                 string   `json:"banco" binding:"max=50"`
	Agencia               string   `json:"agencia" binding:"max=10"`
	Conta                 string   `json:"conta" binding:"max=15"`
	Segmento              *int     `json:"segmento" binding:"required,gte=0"`
	Descricao             string   `json:"descricao" binding:"required,min=20,max=400"`
	Publico               []bool   `json:"publico" binding:"required"`
	OutroPublico          string   `json:"outroPublico" binding:"max=40"`
	ODS                   []bool   `json:"ods" binding:"required"`
	BeneficiariosDiretos  int      `json:"beneficiariosDiretos" binding:"min=1"`
	Estados               []string `json:"estados" binding:"required,min=1"`
	Municipios            []string `json:"municipios" binding:"required,min=1"`
	Lei                   *int     `json:"lei" binding:"required,gte=0"`
	NumeroLei             string   `json:"numeroLei" binding:"max=20"`
	ContrapartidasProjeto string   `json:"contrapartidasProjeto" binding:"required,min=10,max=400"`
	Observacoes           string   `json:"observacoes" binding:"max=400"`
	TermosPrivacidade     bool     `json:"termosPrivacidade"`
	Diario                []string `json:"diario" binding:"max=10"`
	Apresentacao          []string `json:"apresentacao" binding:"max=10"`
	Compliance            []string `json:"compliance" binding:"max=10"`
	Documentos            []string `json:"documentos" binding:"max=10"`
}

// Validate runs the cross-field rules binding tags cannot express. An empty
// map means the payload is valid.
func (r RegistrationRequest) Validate() map[string]string {
	fields := map[string]string{}
	if !cepPattern.MatchString(strings.TrimSpace(r.CEP)) {
		fields["cep"] = "Formato de CEP inválido (ex: 12345-678)."
	}
	validateDates(fields, r.DataComeco, r.DataFim)
	validateODS(fields, r.ODS)
	if !anySelected(r.Publico) {
		fields["publico"] = "Selecione pelo menos um público."
	}
	if other := catalog.OtherAudienceIndex(); other >= 0 && other < len(r.Publico) && r.Publico[other] && strings.TrimSpace(r.OutroPublico) == "" {
		fields["outroPublico"] = "Por favor, especifique o público."
	}
	if !r.TermosPrivacidade {
		fields["termosPrivacidade"] = "Você deve aceitar os termos de privacidade para continuar."
	}
	if r.Segmento != nil && catalog.ItemName(*r.Segmento, catalog.Segmentos) == "" {
		fields["segmento"] = "Selecione uma das opções."
	}
	if r.Lei != nil && catalog.ItemName(*r.Lei, catalog.Leis) == "" {
		fields["lei"] = "Selecione uma das opções."
	}
	validateStates(fields, r.Estados)
	return fields
}

// ToEntity resolves the indices to names. Call it only after Validate.
func (r RegistrationRequest) ToEntity() entities.RegistrationForm {
	return entities.RegistrationForm{
		UsuarioID:             strings.TrimSpace(r.UsuarioID),
		Instituicao:           strings.TrimSpace(r.Instituicao),
		CNPJ:                  strings.TrimSpace(r.CNPJ),
		Representante:         strings.TrimSpace(r.RepresentanteLegal),
		Telefone:              strings.TrimSpace(r.Telefone),
		EmailLegal:            strings.TrimSpace(r.EmailRepLegal),
		Responsavel:           strings.TrimSpace(r.Responsavel),
		EmailResponsavel:      strings.TrimSpace(r.EmailResponsavel),
		CEP:                   strings.TrimSpace(r.CEP),
		Endereco:              strings.TrimSpace(r.Endereco),
		NumeroEndereco:        r.NumeroEndereco,
		Complemento:           strings.TrimSpace(r.Complemento),
		Cidade:                strings.TrimSpace(r.Cidade),
		Estado:                strings.TrimSpace(r.Estado),
		NomeProjeto:           strings.TrimSpace(r.NomeProjeto),
		Website:               strings.TrimSpace(r.Website),
		ValorAprovado:         r.ValorAprovado,
		ValorApto:             r.ValorApto,
		DataInicial:           r.DataComeco,
		DataFinal:             r.DataFim,
		Banco:                 strings.TrimSpace(r.Banco),
		Agencia:               strings.TrimSpace(r.Agencia),
		Conta:                 strings.TrimSpace(r.Conta),
		Segmento:              catalog.ItemName(deref(r.Segmento), catalog.Segmentos),
		Descricao:             strings.TrimSpace(r.Descricao),
		Publico:               catalog.AudienceNames(r.Publico, r.OutroPublico),
		ODS:                   catalog.ODSIDs(r.ODS),
		BeneficiariosDiretos:  r.BeneficiariosDiretos,
		Estados:               canonicalStates(r.Estados),
		Municipios:            trimAll(r.Municipios),
		Lei:                   catalog.ItemName(deref(r.Lei), catalog.Leis),
		NumeroLei:             strings.TrimSpace(r.NumeroLei),
		ContrapartidasProjeto: strings.TrimSpace(r.ContrapartidasProjeto),
		Observacoes:           strings.TrimSpace(r.Observacoes),
		TermosPrivacidade:     r.TermosPrivacidade,
		Diario:                r.Diario,
		Apresentacao:          r.Apresentacao,
		Compliance:            r.Compliance,
		Documentos:            r.Documentos,
	}
}

// FollowUpRequest is the payload of POST /v1/forms/acompanhamento.
type FollowUpRequest struct {
	ProjetoID                string   `json:"projetoID" binding:"required"`
	UsuarioAtualID           string   `json:"usuarioAtualID"`
	Instituicao              string   `json:"instituicao" binding:"required,max=100"`
	Descricao                string   `json:"descricao" binding:"required,min=20,max=500"`
	Segmento                 *int     `json:"segmento" binding:"required,gte=0"`
	Lei                      *int     `json:"lei" binding:"required,gte=0"`
	Positivos                string   `json:"positivos" binding:"max=500"`
	Negativos                string   `json:"negativos" binding:"max=500"`
	Atencao                  string   `json:"atencao" binding:"max=500"`
	Ambito                   *int     `json:"ambito" binding:"required,gte=0"`
	Estados                  []string `json:"estados" binding:"required,min=1"`
	Municipios               []string `json:"municipios" binding:"required,min=1"`
	Especificacoes           string   `json:"especificacoes" binding:"required,min=20,max=500"`
	DataComeco               string   `json:"dataComeco" binding:"required,datetime=2006-01-02"`
	DataFim                  string   `json:"dataFim" binding:"required,datetime=2006-01-02"`
	ContrapartidasProjeto    string   `json:"contrapartidasProjeto" binding:"required,min=20,max=500"`
	BeneficiariosDiretos     int      `json:"beneficiariosDiretos" binding:"gte=0"`
	BeneficiariosIndiretos   int      `json:"beneficiariosIndiretos" binding:"gte=0"`
	Diversidade              string   `json:"diversidade" binding:"required,oneof=true false"`
	QtdAmarelas              int      `json:"qtdAmarelas" binding:"gte=0"`
	QtdBrancas               int      `json:"qtdBrancas" binding:"gte=0"`
	QtdIndigenas             int      `json:"qtdIndigenas" binding:"gte=0"`
	QtdPardas                int      `json:"qtdPardas" binding:"gte=0"`
	QtdPretas                int      `json:"qtdPretas" binding:"gte=0"`
	QtdMulherCis             int      `json:"qtdMulherCis" binding:"gte=0"`
	QtdMulherTrans           int      `json:"qtdMulherTrans" binding:"gte=0"`
	QtdHomemCis              int      `json:"qtdHomemCis" binding:"gte=0"`
	QtdHomemTrans            int      `json:"qtdHomemTrans" binding:"gte=0"`
	QtdNaoBinarios           int      `json:"qtdNaoBinarios" binding:"gte=0"`
	QtdPCD                   int      `json:"qtdPCD" binding:"gte=0"`
	QtdLGBT                  int      `json:"qtdLGBT" binding:"gte=0"`
	ODS                      []bool   `json:"ods" binding:"required"`
	Relato                   string   `json:"relato" binding:"max=500"`
	Fotos                    []string `json:"fotos" binding:"max=5"`
	Website                  string   `json:"website"`
	Links                    string   `json:"links" binding:"max=300"`
	ContrapartidasExecutadas string   `json:"contrapartidasExecutadas" binding:"max=500"`
}

func (r FollowUpRequest) Validate() map[string]string {
	fields := map[string]string{}
	validateDates(fields, r.DataComeco, r.DataFim)
	validateODS(fields, r.ODS)
	if r.Segmento != nil && catalog.ItemName(*r.Segmento, catalog.Segmentos) == "" {
		fields["segmento"] = "Selecione uma das opções."
	}
	if r.Lei != nil && catalog.ItemName(*r.Lei, catalog.Leis) == "" {
		fields["lei"] = "Selecione uma das opções."
	}
	if r.Ambito != nil && catalog.ItemName(*r.Ambito, catalog.Ambitos) == "" {
		fields["ambito"] = "Selecione uma das opções."
	}
	validateStates(fields, r.Estados)
	return fields
}

func (r FollowUpRequest) ToEntity() entities.FollowUpForm {
	return entities.FollowUpForm{
		ProjetoID:       strings.TrimSpace(r.ProjetoID),
		UsuarioID:       strings.TrimSpace(r.UsuarioAtualID),
		Instituicao:     strings.TrimSpace(r.Instituicao),
		Descricao:       strings.TrimSpace(r.Descricao),
		Segmento:        catalog.ItemName(deref(r.Segmento), catalog.Segmentos),
		Lei:             catalog.ItemName(deref(r.Lei), catalog.Leis),
		PontosPositivos: r.Positivos,
		PontosNegativos: r.Negativos,
		PontosAtencao:   r.Atencao,
		Ambito:          catalog.ItemName(deref(r.Ambito), catalog.Ambitos),
		Estados:         canonicalStates(r.Estados),
		Municipios:      trimAll(r.Municipios),
		Especificacoes:  strings.TrimSpace(r.Especificacoes),
		DataInicial:     r.DataComeco,
		DataFinal:       r.DataFim,

		ContrapartidasProjeto:  strings.TrimSpace(r.ContrapartidasProjeto),
		BeneficiariosDiretos:   r.BeneficiariosDiretos,
		BeneficiariosIndiretos: r.BeneficiariosIndiretos,
		Diversidade:            r.Diversidade == "true",
		Diversity: entities.Diversity{
			QtdAmarelas:    r.QtdAmarelas,
			QtdBrancas:     r.QtdBrancas,
			QtdIndigenas:   r.QtdIndigenas,
			QtdPardas:      r.QtdPardas,
			QtdPretas:      r.QtdPretas,
			QtdMulherCis:   r.QtdMulherCis,
			QtdMulherTrans: r.QtdMulherTrans,
			QtdHomemCis:    r.QtdHomemCis,
			QtdHomemTrans:  r.QtdHomemTrans,
			QtdNaoBinarios: r.QtdNaoBinarios,
			QtdPCD:         r.QtdPCD,
			QtdLGBT:        r.QtdLGBT,
		},
		ODS:                      catalog.ODSIDs(r.ODS),
		Relato:                   strings.TrimSpace(r.Relato),
		Fotos:                    r.Fotos,
		Website:                  strings.TrimSpace(r.Website),
		Links:                    strings.TrimSpace(r.Links),
		ContrapartidasExecutadas: r.ContrapartidasExecutadas,
	}
}

func validateDates(fields map[string]string, start, end string) {
	s, err1 := time.Parse(dateLayout, start)
	e, err2 := time.Parse(dateLayout, end)
	if err1 != nil || err2 != nil {
		return
	}
	if !e.After(s) {
		fields["dataFim"] = "A data final deve ser posterior à data inicial."
	}
}

func validateODS(fields map[string]string, ods []bool) {
	n := 0
	for _, on := range ods {
		if on {
			n++
		}
	}
	switch {
	case n == 0:
		fields["ods"] = "Selecione pelo menos uma ODS."
	case n > 3:
		fields["ods"] = "Selecione no máximo 3 ODSs."
	}
}

func validateStates(fields map[string]string, estados []string) {
	for _, e := range estados {
		if _, ok := catalog.StateByName(e); !ok {
			fields["estados"] = "Estado desconhecido: " + strings.TrimSpace(e) + "."
			return
		}
	}
}

func canonicalStates(estados []string) []string {
	out := make([]string, 0, len(estados))
	seen := map[string]bool{}
	for _, e := range estados {
		st, ok := catalog.StateByName(e)
		if !ok || seen[st.Slug] {
			continue
		}
		seen[st.Slug] = true
		out = append(out, st.Nome)
	}
	return out
}

func trimAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func anySelected(list []bool) bool {
	for _, on := range list {
		if on {
			return true
		}
	}
	return false
}

func deref(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}
