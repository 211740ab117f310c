package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
)

type Handlers struct {
	Health           *HealthHandler
	OpenAPI          *OpenAPIHandler
	FormMessages     *FormMessageHandler
	WorkExperience   *WorkExperienceHandler
	PersonalProjects *PersonalProjectHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:           NewHealthHandler(s),
		OpenAPI:          NewOpenAPIHandler(s),
		FormMessages:     NewFormMessageHandler(s, services.FormMessages),
		WorkExperience:   NewWorkExperienceHandler(s, services.WorkExperience),
		PersonalProjects: NewPersonalProjectHandler(s, services.PersonalProjects),
	}
}
