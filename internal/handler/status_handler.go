package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/apperrors"
	"taskboard/internal/service"
)

// StatusHandler serves the read-only status enumeration.
type StatusHandler struct {
	statusService service.StatusService
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(statusService service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// List godoc
// @Summary List all task statuses
// @Tags statuses
// @Produce json
// @Param token header string true "Bearer token"
// @Success 200 {object} apperrors.Envelope
// @Failure 401 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope
// @Router /tasks/statuses [get]
func (h *StatusHandler) List(c echo.Context) error {
	statuses, err := h.statusService.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapToHTTP(err)
		return c.JSON(he.StatusCode, he.Envelope())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":    false,
		"message":  "statuses listed successfully",
		"statuses": statuses,
	})
}
