package model

import (
	"time"

	"github.com/deppfellow/portfolio-backend/internal/validation"
)

// FormMessage is a message left through the contact form.
type FormMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFormMessagePayload is the body of POST /form-message.
type CreateFormMessagePayload struct {
	Name    string `json:"name" validate:"required,max=320"`
	Email   string `json:"email" validate:"required,max=320"`
	Message string `json:"message" validate:"required"`
}

func (p *CreateFormMessagePayload) Validate() error {
	return validation.Struct(p)
}

// FormMessage returns the record to store. CreatedAt is left for the service.
func (p *CreateFormMessagePayload) FormMessage() FormMessage {
	return FormMessage{
		Name:    p.Name,
		Email:   p.Email,
		Message: p.Message,
	}
}

// ListFormMessagesRequest has no parameters.
type ListFormMessagesRequest struct{}

func (r *ListFormMessagesRequest) Validate() error { return nil }
