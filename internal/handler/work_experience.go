package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type WorkExperienceHandler struct {
	Handler
	service *service.WorkExperienceService
}

func NewWorkExperienceHandler(s *server.Server, svc *service.WorkExperienceService) *WorkExperienceHandler {
	return &WorkExperienceHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *WorkExperienceHandler) ListWorkExperience(c echo.Context, _ *model.ListWorkExperienceRequest) ([]model.WorkExperience, error) {
	return h.service.List(c.Request().Context())
}

func (h *WorkExperienceHandler) CreateWorkExperience(c echo.Context, payload *model.CreateWorkExperiencePayload) (model.WorkExperience, error) {
	return h.service.Create(c.Request().Context(), payload.WorkExperience())
}
