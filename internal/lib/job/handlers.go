package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

func (j *JobService) handleContactNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p ContactNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal contact notification payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "contact_notification").
		Str("from", p.Email).
		Msg("Processing contact notification task")

	if err := j.mailer.SendContactNotification(p.To, p.Name, p.Email, p.Message); err != nil {
		j.logger.Error().
			Str("type", "contact_notification").
			Str("from", p.Email).
			Err(err).
			Msg("Failed to send contact notification")
		return err
	}

	j.logger.Info().
		Str("type", "contact_notification").
		Str("from", p.Email).
		Msg("Successfully sent contact notification")

	return nil
}

func (j *JobService) handleContactThankYouTask(ctx context.Context, t *asynq.Task) error {
	var p ContactThankYouPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal thank-you payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "contact_thank_you").
		Str("to", p.To).
		Msg("Processing thank-you email task")

	if err := j.mailer.SendThankYouEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "contact_thank_you").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send thank-you email")

		// Retrying cannot fix a missing name.
		if errors.Is(err, email.ErrEmptyName) {
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		return err
	}

	j.logger.Info().
		Str("type", "contact_thank_you").
		Str("to", p.To).
		Msg("Successfully sent thank-you email")

	return nil
}
