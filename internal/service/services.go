// Package service contains the business logic.
//
// It sits between the handler and repository layers: it fills in defaults,
// normalizes incoming records and calls the repositories.
package service

import (
	"context"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/lib/job"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/repository"
	"github.com/deppfellow/portfolio-backend/internal/server"
)

// ContactNotifier is told about every stored form message.
type ContactNotifier interface {
	EnqueueContactNotifications(ctx context.Context, msg model.FormMessage) error
}

// Clock returns the current time.
type Clock func() time.Time

type Services struct {
	Auth             *AuthService
	Job              *job.JobService
	FormMessages     *FormMessageService
	WorkExperience   *WorkExperienceService
	PersonalProjects *PersonalProjectService
}

// NewServices builds the services. Contact notifications are wired only when
// the job queue is running and mail delivery is configured.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	var notifier ContactNotifier
	if s.Job != nil && s.Config.NotificationsEnabled() {
		notifier = s.Job
	}

	return &Services{
		Job:              s.Job,
		Auth:             authService,
		FormMessages:     NewFormMessageService(s, repos.FormMessages, notifier),
		WorkExperience:   NewWorkExperienceService(repos.WorkExperience),
		PersonalProjects: NewPersonalProjectService(repos.PersonalProjects),
	}, nil
}
