package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type sentNotification struct {
	to, name, email, message string
}

type fakeMailer struct {
	notifications []sentNotification
	thankYous     []string
	err           error
}

func (f *fakeMailer) SendContactNotification(to, senderName, senderEmail, message string) error {
	if f.err != nil {
		return f.err
	}
	f.notifications = append(f.notifications, sentNotification{to, senderName, senderEmail, message})
	return nil
}

func (f *fakeMailer) SendThankYouEmail(to, name string) error {
	if _, err := email.FirstName(name); err != nil {
		return err
	}
	if f.err != nil {
		return f.err
	}
	f.thankYous = append(f.thankYous, to)
	return nil
}

func newTestService(m Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, mailer: m, ownerEmail: "owner@ihh.dev"}
}

func TestTaskConstructors(t *testing.T) {
	t.Parallel()

	task, err := NewContactNotificationTask(ContactNotificationPayload{To: "owner@ihh.dev", Name: "Ada", Email: "ada@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("NewContactNotificationTask: %v", err)
	}
	if task.Type() != TaskContactNotification {
		t.Fatalf("type = %q", task.Type())
	}

	var p ContactNotificationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.Email != "ada@example.com" || p.To != "owner@ihh.dev" {
		t.Fatalf("payload = %+v", p)
	}

	thanks, err := NewContactThankYouTask(ContactThankYouPayload{To: "ada@example.com", Name: "Ada"})
	if err != nil {
		t.Fatalf("NewContactThankYouTask: %v", err)
	}
	if thanks.Type() != TaskContactThankYou {
		t.Fatalf("type = %q", thanks.Type())
	}
}

func TestHandleContactNotificationTask(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	j := newTestService(mailer)

	task, _ := NewContactNotificationTask(ContactNotificationPayload{To: "owner@ihh.dev", Name: "Ada", Email: "ada@example.com", Message: "hi"})
	if err := j.handleContactNotificationTask(context.Background(), task); err != nil {
		t.Fatalf("handler: %v", err)
	}

	want := sentNotification{"owner@ihh.dev", "Ada", "ada@example.com", "hi"}
	if len(mailer.notifications) != 1 || mailer.notifications[0] != want {
		t.Fatalf("notifications = %+v", mailer.notifications)
	}
}

func TestHandleContactNotificationRetriesProviderErrors(t *testing.T) {
	t.Parallel()

	providerErr := errors.New("resend unavailable")
	j := newTestService(&fakeMailer{err: providerErr})

	task, _ := NewContactNotificationTask(ContactNotificationPayload{Name: "Ada"})
	err := j.handleContactNotificationTask(context.Background(), task)
	if !errors.Is(err, providerErr) {
		t.Fatalf("error = %v, want provider error", err)
	}
	if errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("provider errors should be retried")
	}
}

func TestHandleThankYouSkipsRetryForEmptyName(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	j := newTestService(mailer)

	task, _ := NewContactThankYouTask(ContactThankYouPayload{To: "ada@example.com", Name: " "})
	err := j.handleContactThankYouTask(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("error = %v, want SkipRetry", err)
	}
	if len(mailer.thankYous) != 0 {
		t.Fatalf("no email should be sent for an empty name")
	}

	ok, _ := NewContactThankYouTask(ContactThankYouPayload{To: "ada@example.com", Name: "Ada Lovelace"})
	if err := j.handleContactThankYouTask(context.Background(), ok); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if len(mailer.thankYous) != 1 || mailer.thankYous[0] != "ada@example.com" {
		t.Fatalf("thank-yous = %v", mailer.thankYous)
	}
}

func TestHandlersSkipRetryOnBadPayload(t *testing.T) {
	t.Parallel()

	j := newTestService(&fakeMailer{})
	bad := asynq.NewTask(TaskContactThankYou, []byte("{"))

	if err := j.handleContactThankYouTask(context.Background(), bad); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("thank-you error = %v, want SkipRetry", err)
	}
	if err := j.handleContactNotificationTask(context.Background(), bad); !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("notification error = %v, want SkipRetry", err)
	}
}
