package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetline/dispatch/internal/pkg/middleware"
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/services/dispatch"
	httpHandler "github.com/fleetline/dispatch/services/dispatch/handler/http"
)

// Handler coordinates the HTTP handlers for the dispatch service
type Handler struct {
	authHandler     *httpHandler.AuthHandler
	driverHandler   *httpHandler.DriverHandler
	jobHandler      *httpHandler.JobHandler
	activityHandler *httpHandler.ActivityHandler
	dispatchUC      dispatch.DispatchUC
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(dispatchUC dispatch.DispatchUC, cfg *models.Config) *Handler {
	return &Handler{
		authHandler:     httpHandler.NewAuthHandler(dispatchUC),
		driverHandler:   httpHandler.NewDriverHandler(dispatchUC),
		jobHandler:      httpHandler.NewJobHandler(dispatchUC),
		activityHandler: httpHandler.NewActivityHandler(dispatchUC),
		dispatchUC:      dispatchUC,
		cfg:             cfg,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Public routes (no authentication required)
	api.POST("/auth/login", h.authHandler.Login)

	// Protected routes; the usecase doubles as the caller resolver so every
	// token is re-checked against the identity store.
	authn := api.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT, h.dispatchUC))

	authn.GET("/me", h.authHandler.Me)

	driverGroup := authn.Group("/drivers", middleware.AdminOnly())
	driverGroup.GET("", h.driverHandler.ListDrivers)
	driverGroup.POST("", h.driverHandler.CreateDriver)

	jobGroup := authn.Group("/jobs")
	jobGroup.GET("", h.jobHandler.ListJobs)
	jobGroup.POST("", h.jobHandler.CreateJob, middleware.AdminOnly())
	jobGroup.PATCH("/:id/status", h.jobHandler.UpdateJobStatus)

	authn.GET("/activity", h.activityHandler.ListActivity, middleware.AdminOnly())
}
