package handler

import (
	"net/http"

	"github.com/Rak-Code/swiftcart-backend/internal/application/dto"
	"github.com/Rak-Code/swiftcart-backend/internal/application/service"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
	"github.com/Rak-Code/swiftcart-backend/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReminderHandler handles reminder API requests.
type ReminderHandler struct {
	reminderSvc service.ReminderSchedulerService
	log         logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderSvc service.ReminderSchedulerService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{reminderSvc: reminderSvc, log: log}
}

// Cancel handles DELETE /api/reminders. It removes all reminders for the
// (user, product, type) tuple; a tuple with no reminders still returns 204.
func (h *ReminderHandler) Cancel(c echo.Context) error {
	var req dto.CancelReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.reminderSvc.CancelReminder(c.Request().Context(), req.UserID, req.ProductID, constant.ReminderType(req.Type))
	if err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
