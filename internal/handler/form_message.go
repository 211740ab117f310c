package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type FormMessageHandler struct {
	Handler
	service *service.FormMessageService
}

func NewFormMessageHandler(s *server.Server, svc *service.FormMessageService) *FormMessageHandler {
	return &FormMessageHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *FormMessageHandler) ListFormMessages(c echo.Context, _ *model.ListFormMessagesRequest) ([]model.FormMessage, error) {
	return h.service.List(c.Request().Context())
}

func (h *FormMessageHandler) CreateFormMessage(c echo.Context, payload *model.CreateFormMessagePayload) (model.FormMessage, error) {
	return h.service.Create(c.Request().Context(), payload.FormMessage())
}
