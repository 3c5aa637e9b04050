package entities

// Law is an incentive law registered by administrators (collection "leis").
type Law struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
}

// Association links an external user to the projects they registered
// (collection "associacao", PK usuarioID).
type Association struct {
	UsuarioID   string   `json:"usuarioID"`
	ProjetosIDs []string `json:"projetosIDs"`
}
