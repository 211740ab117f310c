package model

import "github.com/deppfellow/portfolio-backend/internal/validation"

// WorkExperience is one position held. A nil EndDate means it is ongoing.
type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
	Skills      Skills `json:"skills"`
	StartDate   Date   `json:"start_date"`
	EndDate     *Date  `json:"end_date"`
}

// CreateWorkExperiencePayload is the body of POST /work-experience.
type CreateWorkExperiencePayload struct {
	Company     string `json:"company" validate:"required,max=255"`
	Position    string `json:"position" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Skills      Skills `json:"skills"`
	StartDate   *Date  `json:"start_date" validate:"required"`
	EndDate     *Date  `json:"end_date"`
}

func (p *CreateWorkExperiencePayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateWorkExperiencePayload) WorkExperience() WorkExperience {
	w := WorkExperience{
		Company:     p.Company,
		Position:    p.Position,
		Description: p.Description,
		Skills:      p.Skills,
		EndDate:     p.EndDate,
	}
	if p.StartDate != nil {
		w.StartDate = *p.StartDate
	}
	return w
}

type ListWorkExperienceRequest struct{}

func (r *ListWorkExperienceRequest) Validate() error { return nil }
