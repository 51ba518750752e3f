package handler

import (
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReminderHandler lets administrators send today's delivery reminders on demand.
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	now        func() time.Time
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(reminderUC usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{reminderUC: reminderUC, now: time.Now}
}

// SendReminders notifies every customer with a delivery today.
func (h *ReminderHandler) SendReminders(c echo.Context) error {
	result, err := h.reminderUC.SendDeliveryReminders(c.Request().Context(), h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}
