package entities

import "time"

// FollowUpForm is a periodic update of an approved project
// (collection "forms-acompanhamento").
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (projeto_id-index): projetoID, sorted by dataResposta
type FollowUpForm struct {
	ID                       string    `json:"id"`
	ProjetoID                string    `json:"projetoID"`
	UsuarioID                string    `json:"usuarioID"`
	DataResposta             string    `json:"dataResposta"`
	Instituicao              string    `json:"instituicao"`
	Descricao                string    `json:"descricao"`
	Segmento                 string    `json:"segmento"`
	Lei                      string    `json:"lei"`
	PontosPositivos          string    `json:"pontosPositivos"`
	PontosNegativos          string    `json:"pontosNegativos"`
	PontosAtencao            string    `json:"pontosAtencao"`
	Ambito                   string    `json:"ambito"`
	QtdEstados               int       `json:"qtdEstados"`
	Estados                  []string  `json:"estados"`
	QtdMunicipios            int       `json:"qtdMunicipios"`
	Municipios               []string  `json:"municipios"`
	Especificacoes           string    `json:"especificacoes"`
	DataInicial              string    `json:"dataInicial"`
	DataFinal                string    `json:"dataFinal"`
	ContrapartidasProjeto    string    `json:"contrapartidasProjeto"`
	BeneficiariosDiretos     int       `json:"beneficiariosDiretos"`
	BeneficiariosIndiretos   int       `json:"beneficiariosIndiretos"`
	Diversidade              bool      `json:"diversidade"`
	Diversity                Diversity `json:"diversidadeQtd"`
	ODS                      []int     `json:"ods"`
	Relato                   string    `json:"relato"`
	Fotos                    []string  `json:"fotos"`
	Website                  string    `json:"website"`
	Links                    string    `json:"links"`
	ContrapartidasExecutadas string    `json:"contrapartidasExecutadas"`
	CreatedAt                time.Time `json:"createdAt"`
}

// Diversity holds the beneficiary headcounts by ethnicity, gender and other
// groups reported on a follow-up form.
type Diversity struct {
	QtdAmarelas    int `json:"qtdAmarelas"`
	QtdBrancas     int `json:"qtdBrancas"`
	QtdIndigenas   int `json:"qtdIndigenas"`
	QtdPardas      int `json:"qtdPardas"`
	QtdPretas      int `json:"qtdPretas"`
	QtdMulherCis   int `json:"qtdMulherCis"`
	QtdMulherTrans int `json:"qtdMulherTrans"`
	QtdHomemCis    int `json:"qtdHomemCis"`
	QtdHomemTrans  int `json:"qtdHomemTrans"`
	QtdNaoBinarios int `json:"qtdNaoBinarios"`
	QtdPCD         int `json:"qtdPCD"`
	QtdLGBT        int `json:"qtdLGBT"`
}

// After reports whether f was answered after o (response date, then creation time).
func (f FollowUpForm) After(o FollowUpForm) bool {
	if f.DataResposta != o.DataResposta {
		return f.DataResposta > o.DataResposta
	}
	return f.CreatedAt.After(o.CreatedAt)
}
