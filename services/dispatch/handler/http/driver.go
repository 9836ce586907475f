package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetline/dispatch/internal/pkg/logger"
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/internal/utils"
	"github.com/fleetline/dispatch/services/dispatch"
)

// DriverHandler handles HTTP requests for driver management
type DriverHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(dispatchUC dispatch.DispatchUC) *DriverHandler {
	return &DriverHandler{dispatchUC: dispatchUC}
}

// ListDrivers returns all drivers
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.dispatchUC.ListDrivers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list drivers", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list drivers")
	}
	return c.JSON(http.StatusOK, drivers)
}

// CreateDriver registers a new driver
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	var req models.CreateDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Driver name required")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Driver name required")
	}

	driver, err := h.dispatchUC.CreateDriver(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, dispatch.ErrValidation) {
			return utils.BadRequestResponse(c, "Driver name required")
		}
		logger.Error("Failed to create driver",
			logger.ErrorField(err),
			logger.String("name", req.Name))
		return utils.InternalServerErrorResponse(c, "Failed to create driver")
	}

	return c.JSON(http.StatusCreated, driver)
}
