// Package email sends transactional email through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// sender is the part of the Resend emails service the client uses.
type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	emails   sender
	fromName string
	from     string
	logger   *zerolog.Logger
}

// NewClient creates a Client that sends as Integration.OwnerName <Integration.FromEmail>.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		emails:   resend.NewClient(cfg.Integration.ResendAPIKey).Emails,
		fromName: cfg.Integration.OwnerName,
		from:     cfg.Integration.FromEmail,
		logger:   logger,
	}
}

// Message is one outgoing email.
type Message struct {
	To       string
	ReplyTo  string
	Subject  string
	Template Template
	Data     map[string]string
}

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name.fileName(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

// SendEmail renders msg.Template and sends it through Resend.
func (c *Client) SendEmail(msg Message) error {
	body, err := Render(msg.Template, msg.Data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.from),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    body,
		ReplyTo: msg.ReplyTo,
	}

	sent, err := c.emails.Send(params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	if c.logger != nil && sent != nil {
		c.logger.Debug().
			Str("template", string(msg.Template)).
			Str("email_id", sent.Id).
			Msg("email accepted by resend")
	}
	return nil
}
