package entities

// ProjectSnapshot is the normalized view of a project's categorical and
// numeric attributes, whichever form schema it was read from.
type ProjectSnapshot struct {
	ProjectID              string
	Nome                   string
	Instituicao            string
	Lei                    string
	Segmento               string
	Estados                []string
	Municipios             []string
	ODS                    []int
	BeneficiariosDiretos   int
	BeneficiariosIndiretos int
	ValorAprovado          float64
}

// SnapshotFromRegistration adapts a registration form. Registration forms
// carry no indirect beneficiary count.
func SnapshotFromRegistration(f RegistrationForm) ProjectSnapshot {
	return ProjectSnapshot{
		ProjectID:            f.ProjetoID,
		Nome:                 f.NomeProjeto,
		Instituicao:          f.Instituicao,
		Lei:                  f.Lei,
		Segmento:             f.Segmento,
		Estados:              append([]string(nil), f.Estados...),
		Municipios:           append([]string(nil), f.Municipios...),
		ODS:                  append([]int(nil), f.ODS...),
		BeneficiariosDiretos: f.BeneficiariosDiretos,
		ValorAprovado:        f.ValorAprovado,
	}
}

func SnapshotFromFollowUp(f FollowUpForm) ProjectSnapshot {
	return ProjectSnapshot{
		ProjectID:              f.ProjetoID,
		Instituicao:            f.Instituicao,
		Lei:                    f.Lei,
		Segmento:               f.Segmento,
		Estados:                append([]string(nil), f.Estados...),
		Municipios:             append([]string(nil), f.Municipios...),
		ODS:                    append([]int(nil), f.ODS...),
		BeneficiariosDiretos:   f.BeneficiariosDiretos,
		BeneficiariosIndiretos: f.BeneficiariosIndiretos,
	}
}

// WithProject fills the project-level fields a form does not carry.
func (s ProjectSnapshot) WithProject(p Project) ProjectSnapshot {
	s.ProjectID = p.ID
	s.Nome = p.Nome
	s.ValorAprovado = p.ValorAprovado
	if s.Instituicao == "" {
		s.Instituicao = p.Instituicao
	}
	if s.Lei == "" {
		s.Lei = p.Lei
	}
	return s
}

// SnapshotFromProject is used when a project has no form at all.
func SnapshotFromProject(p Project) ProjectSnapshot {
	return ProjectSnapshot{
		Estados:    append([]string(nil), p.Estados...),
		Municipios: append([]string(nil), p.Municipios...),
	}.WithProject(p)
}
