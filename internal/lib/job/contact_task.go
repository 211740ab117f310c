package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

const (
	// TaskContactNotification emails the site owner a new contact message.
	TaskContactNotification = "email:contact_notification"

	// TaskContactThankYou emails the sender an acknowledgement.
	TaskContactThankYou = "email:contact_thank_you"
)

// ContactNotificationPayload carries a contact form message to the owner.
type ContactNotificationPayload struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactThankYouPayload addresses the acknowledgement email.
type ContactThankYouPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

func NewContactNotificationTask(p ContactNotificationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactNotification,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

func NewContactThankYouTask(p ContactThankYouPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactThankYou,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueContactNotifications queues the owner notification and the sender's
// thank-you email for a stored form message.
func (j *JobService) EnqueueContactNotifications(ctx context.Context, msg model.FormMessage) error {
	notification, err := NewContactNotificationTask(ContactNotificationPayload{
		To:      j.ownerEmail,
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
	})
	if err != nil {
		return errors.Wrap(err, "failed to build contact notification task")
	}

	thankYou, err := NewContactThankYouTask(ContactThankYouPayload{
		To:   msg.Email,
		Name: msg.Name,
	})
	if err != nil {
		return errors.Wrap(err, "failed to build thank-you task")
	}

	for _, task := range []*asynq.Task{notification, thankYou} {
		info, err := j.Client.EnqueueContext(ctx, task)
		if err != nil {
			return errors.Wrapf(err, "failed to enqueue %s", task.Type())
		}
		j.logger.Debug().
			Str("task", task.Type()).
			Str("task_id", info.ID).
			Str("form_message_id", msg.ID).
			Msg("enqueued contact email")
	}

	return nil
}
