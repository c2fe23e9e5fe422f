package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/contactremind/internal/entity"
	"github.com/ds124wfegd/contactremind/internal/service"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderService service.ReminderService
}

func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req service.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidDateFormat) ||
			errors.Is(err, entity.ErrFrequencyRequired) ||
			errors.Is(err, entity.ErrInvalidFrequency) ||
			errors.Is(err, entity.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

func (h *ReminderHandler) GetUserReminders(c *gin.Context) {
	userID := c.Param("user_id")

	reminders, err := h.reminderService.GetUserReminders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reminders": reminders,
		"count":     len(reminders),
	})
}

func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	id := c.Param("id")

	if err := h.reminderService.CompleteReminder(c.Request.Context(), id); err != nil {
		if errors.Is(err, entity.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder completed"})
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id := c.Param("id")

	if err := h.reminderService.DeleteReminder(c.Request.Context(), id); err != nil {
		if errors.Is(err, entity.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}
