package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PersonalProjectHandler struct {
	Handler
	service *service.PersonalProjectService
}

func NewPersonalProjectHandler(s *server.Server, svc *service.PersonalProjectService) *PersonalProjectHandler {
	return &PersonalProjectHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *PersonalProjectHandler) ListPersonalProjects(c echo.Context, _ *model.ListPersonalProjectsRequest) ([]model.PersonalProject, error) {
	return h.service.List(c.Request().Context())
}

func (h *PersonalProjectHandler) CreatePersonalProject(c echo.Context, payload *model.CreatePersonalProjectPayload) (model.PersonalProject, error) {
	return h.service.Create(c.Request().Context(), payload.PersonalProject())
}
