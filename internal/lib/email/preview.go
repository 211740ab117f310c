package email

// PreviewData holds sample template data, keyed by template, for local
// previews and template tests.
var PreviewData = map[Template]map[string]string{
	TemplateContactNotification: {
		"Name":    "Jane Doe",
		"Email":   "jane@example.com",
		"Message": "Hi! I loved your latest project and would like to chat.",
	},
	TemplateContactThankYou: {
		"FirstName": "Jane",
		"OwnerName": "Isaac",
	},
}
