package interfaces

import (
	"context"
	"painel_incentivos/internal/domain/entities"
)

// INotifier delivers a due follow-up reminder to the people responsible for a
// project. link points to the follow-up form of that project.
type INotifier interface {
	NotifyFollowUp(ctx context.Context, p entities.Project, reminder entities.FollowUpReminder, link string) error
}
