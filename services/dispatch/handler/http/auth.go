package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetline/dispatch/internal/pkg/logger"
	"github.com/fleetline/dispatch/internal/pkg/middleware"
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/internal/utils"
	"github.com/fleetline/dispatch/services/dispatch"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(dispatchUC dispatch.DispatchUC) *AuthHandler {
	return &AuthHandler{dispatchUC: dispatchUC}
}

// Login handles password authentication requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Email and password required")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Email and password required")
	}

	resp, err := h.dispatchUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, dispatch.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.Error("Login failed",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated caller's identity
func (h *AuthHandler) Me(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid token")
	}
	return c.JSON(http.StatusOK, caller)
}
