package email

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyName is returned when a thank-you email has no name to greet.
var ErrEmptyName = errors.New("invalid name: name is empty")

// FirstName returns the first space-separated word of name.
func FirstName(name string) (string, error) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ErrEmptyName
	}
	return fields[0], nil
}

// SendContactNotification forwards a contact form message to the owner.
// Replies go straight to the sender.
func (c *Client) SendContactNotification(to, senderName, senderEmail, message string) error {
	return c.SendEmail(Message{
		To:       to,
		ReplyTo:  senderEmail,
		Subject:  "New email from " + senderName + " on ihh.dev",
		Template: TemplateContactNotification,
		Data: map[string]string{
			"Name":    senderName,
			"Email":   senderEmail,
			"Message": message,
		},
	})
}

// SendThankYouEmail acknowledges a contact form message.
func (c *Client) SendThankYouEmail(to, name string) error {
	firstName, err := FirstName(name)
	if err != nil {
		return err
	}

	return c.SendEmail(Message{
		To:       to,
		Subject:  "I'll get back to you soon, " + firstName + "!",
		Template: TemplateContactThankYou,
		Data: map[string]string{
			"FirstName": firstName,
			"OwnerName": c.fromName,
		},
	})
}
