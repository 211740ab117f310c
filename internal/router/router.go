// Package router builds the Echo instance: global middleware, the error
// handler and every route.
package router

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/handler"
	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerPortfolioRoutes(router, h, middlewares, s.Config.Server.FormMessageRatePerMinute)

	return router
}

func registerPortfolioRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares, formMessageRate int) {
	r.GET("/form-messages", handler.Handle(
		h.FormMessages.Handler,
		h.FormMessages.ListFormMessages,
		http.StatusOK,
		&model.ListFormMessagesRequest{},
	), m.Auth.RequireAuthIfEnabled)

	r.POST("/form-message", handler.Handle(
		h.FormMessages.Handler,
		h.FormMessages.CreateFormMessage,
		http.StatusOK,
		&model.CreateFormMessagePayload{},
	), m.RateLimit.PerMinute(formMessageRate))

	r.GET("/work-experience", handler.Handle(
		h.WorkExperience.Handler,
		h.WorkExperience.ListWorkExperience,
		http.StatusOK,
		&model.ListWorkExperienceRequest{},
	))

	r.POST("/work-experience", handler.Handle(
		h.WorkExperience.Handler,
		h.WorkExperience.CreateWorkExperience,
		http.StatusOK,
		&model.CreateWorkExperiencePayload{},
	))

	r.GET("/personal-projects", handler.Handle(
		h.PersonalProjects.Handler,
		h.PersonalProjects.ListPersonalProjects,
		http.StatusOK,
		&model.ListPersonalProjectsRequest{},
	))

	r.POST("/personal-project", handler.Handle(
		h.PersonalProjects.Handler,
		h.PersonalProjects.CreatePersonalProject,
		http.StatusOK,
		&model.CreatePersonalProjectPayload{},
	))
}
