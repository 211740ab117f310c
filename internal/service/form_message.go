package service

import (
	"context"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/repository"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/rs/zerolog"
)

type FormMessageService struct {
	server   *server.Server
	repo     repository.FormMessageRepository
	notifier ContactNotifier
	now      Clock
}

// NewFormMessageService creates the service. notifier may be nil.
func NewFormMessageService(s *server.Server, repo repository.FormMessageRepository, notifier ContactNotifier) *FormMessageService {
	return &FormMessageService{
		server:   s,
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to stamp created_at.
func (s *FormMessageService) WithClock(now Clock) *FormMessageService {
	s.now = now
	return s
}

func (s *FormMessageService) List(ctx context.Context) ([]model.FormMessage, error) {
	return s.repo.List(ctx)
}

// Create stores msg and then queues the contact emails. A queueing failure
// is logged; the message is already committed.
func (s *FormMessageService) Create(ctx context.Context, msg model.FormMessage) (model.FormMessage, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}
	msg.CreatedAt = msg.CreatedAt.UTC().Truncate(time.Microsecond)

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return model.FormMessage{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueContactNotifications(ctx, created); err != nil {
			s.logger(ctx).Error().
				Err(err).
				Str("form_message_id", created.ID).
				Msg("failed to enqueue contact notifications")
		}
	}

	return created, nil
}

func (s *FormMessageService) logger(ctx context.Context) *zerolog.Logger {
	// The request logger is attached by the context middleware.
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}
