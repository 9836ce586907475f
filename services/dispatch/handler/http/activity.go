package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetline/dispatch/internal/pkg/logger"
	"github.com/fleetline/dispatch/internal/utils"
	"github.com/fleetline/dispatch/services/dispatch"
)

// ActivityHandler handles HTTP requests for the activity log
type ActivityHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(dispatchUC dispatch.DispatchUC) *ActivityHandler {
	return &ActivityHandler{dispatchUC: dispatchUC}
}

// ListActivity returns the most recent activity entries, newest first.
// An absent or malformed limit falls back to the default.
func (h *ActivityHandler) ListActivity(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = 0
	}

	entries, err := h.dispatchUC.ListActivity(c.Request().Context(), limit)
	if err != nil {
		logger.Error("Failed to list activity", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list activity")
	}
	return c.JSON(http.StatusOK, entries)
}
