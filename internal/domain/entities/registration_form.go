package entities

import "time"

// RegistrationForm is the one-time intake document of a project
// (collection "forms-cadastro").
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (projeto_id-index): projetoID
//
// Document fields (Diario, Apresentacao, Compliance, Documentos) hold the
// URLs returned by the upload service; they are opaque here.
type RegistrationForm struct {
	ID                    string    `json:"id"`
	ProjetoID             string    `json:"projetoID"`
	UsuarioID             string    `json:"usuarioID"`
	DataPreenchido        string    `json:"dataPreenchido"`
	Instituicao           string    `json:"instituicao"`
	CNPJ                  string    `json:"cnpj"`
	Representante         string    `json:"representante"`
	Telefone              string    `json:"telefone"`
	EmailLegal            string    `json:"emailLegal"`
	Responsavel           string    `json:"responsavel"`
	EmailResponsavel      string    `json:"emailResponsavel"`
	CEP                   string    `json:"cep"`
	Endereco              string    `json:"endereco"`
	NumeroEndereco        int       `json:"numeroEndereco"`
	Complemento           string    `json:"complemento"`
	Cidade                string    `json:"cidade"`
	Estado                string    `json:"estado"`
	NomeProjeto           string    `json:"nomeProjeto"`
	Website               string    `json:"website"`
	ValorAprovado         float64   `json:"valorAprovado"`
	ValorApto             float64   `json:"valorApto"`
	DataInicial           string    `json:"dataInicial"`
	DataFinal             string    `json:"dataFinal"`
	Banco                 string    `json:"banco"`
	Agencia               string    `json:"agencia"`
	Conta                 string    `json:"conta"`
	Segmento              string    `json:"segmento"`
	Descricao             string    `json:"descricao"`
	Publico               []string  `json:"publico"`
	ODS                   []int     `json:"ods"`
	BeneficiariosDiretos  int       `json:"beneficiariosDiretos"`
	QtdEstados            int       `json:"qtdEstados"`
	Estados               []string  `json:"estados"`
	QtdMunicipios         int       `json:"qtdMunicipios"`
	Municipios            []string  `json:"municipios"`
	Lei                   string    `json:"lei"`
	NumeroLei             string    `json:"numeroLei"`
	ContrapartidasProjeto string    `json:"contrapartidasProjeto"`
	Observacoes           string    `json:"observacoes"`
	TermosPrivacidade     bool      `json:"termosPrivacidade"`
	Diario                []string  `json:"diario"`
	Apresentacao          []string  `json:"apresentacao"`
	Compliance            []string  `json:"compliance"`
	Documentos            []string  `json:"documentos"`
	CreatedAt             time.Time `json:"createdAt"`
}
