package usecase

import (
	"context"
	"fmt"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"
)

// snapshotLoader turns a project's forms into the snapshot the aggregation
// code works with, whichever of the two form collections holds the data.
type snapshotLoader struct {
	registrations interfaces.IRegistrationFormRepository
	followUps     interfaces.IFollowUpFormRepository
}

// Current resolves the project's "last form": the document referenced by
// UltimoFormulario, looked up in the follow-up collection first and in the
// registration collection second. Without a usable pointer it falls back to
// the latest form on record, and without any form to the project itself.
func (l snapshotLoader) Current(ctx context.Context, p entities.Project) (entities.ProjectSnapshot, error) {
	if p.UltimoFormulario != "" {
		f, err := l.followUps.GetByID(ctx, p.UltimoFormulario)
		if err != nil {
			return entities.ProjectSnapshot{}, fmt.Errorf("get follow-up form %s: %w", p.UltimoFormulario, err)
		}
		if f.ID != "" {
			return entities.SnapshotFromFollowUp(f).WithProject(p), nil
		}
		reg, err := l.registrations.GetByID(ctx, p.UltimoFormulario)
		if err != nil {
			return entities.ProjectSnapshot{}, fmt.Errorf("get registration form %s: %w", p.UltimoFormulario, err)
		}
		if reg.ID != "" {
			return entities.SnapshotFromRegistration(reg).WithProject(p), nil
		}
	}
	return l.Latest(ctx, p)
}

// Latest returns the snapshot of the most recent follow-up form of the
// project, else of its registration form, else of the project record.
func (l snapshotLoader) Latest(ctx context.Context, p entities.Project) (entities.ProjectSnapshot, error) {
	forms, err := l.followUps.ListByProjectID(ctx, p.ID)
	if err != nil {
		return entities.ProjectSnapshot{}, fmt.Errorf("list follow-up forms of %s: %w", p.ID, err)
	}
	if len(forms) > 0 {
		latest := forms[0]
		for _, f := range forms[1:] {
			if f.After(latest) {
				latest = f
			}
		}
		return entities.SnapshotFromFollowUp(latest).WithProject(p), nil
	}

	reg, err := l.registrations.GetByProjectID(ctx, p.ID)
	if err != nil {
		return entities.ProjectSnapshot{}, fmt.Errorf("get registration form of %s: %w", p.ID, err)
	}
	if reg.ID != "" {
		return entities.SnapshotFromRegistration(reg).WithProject(p), nil
	}
	return entities.SnapshotFromProject(p), nil
}
