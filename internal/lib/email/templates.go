package email

// Template names an embedded email template.
type Template string

const (
	// TemplateContactNotification tells the site owner about a new message.
	TemplateContactNotification Template = "contact_notification"

	// TemplateContactThankYou acknowledges the sender.
	TemplateContactThankYou Template = "contact_thank_you"
)

func (t Template) fileName() string {
	return string(t) + ".html"
}
