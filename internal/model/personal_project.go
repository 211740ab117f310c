package model

import "github.com/deppfellow/portfolio-backend/internal/validation"

// PersonalProject is a side project shown on the portfolio.
type PersonalProject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Skills      Skills  `json:"skills"`
	URL         *string `json:"url"`
}

// CreatePersonalProjectPayload is the body of POST /personal-project.
type CreatePersonalProjectPayload struct {
	Name        string  `json:"name" validate:"required,max=320"`
	Description string  `json:"description" validate:"required"`
	Skills      Skills  `json:"skills"`
	URL         *string `json:"url"`
}

func (p *CreatePersonalProjectPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreatePersonalProjectPayload) PersonalProject() PersonalProject {
	return PersonalProject{
		Name:        p.Name,
		Description: p.Description,
		Skills:      p.Skills,
		URL:         p.URL,
	}
}

type ListPersonalProjectsRequest struct{}

func (r *ListPersonalProjectsRequest) Validate() error { return nil }
