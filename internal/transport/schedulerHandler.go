package transport

import (
	"net/http"

	"github.com/ds124wfegd/contactremind/internal/service"

	"github.com/gin-gonic/gin"
)

type SchedulerHandler struct {
	schedulerService service.SchedulerService
}

func NewSchedulerHandler(schedulerService service.SchedulerService) *SchedulerHandler {
	return &SchedulerHandler{schedulerService: schedulerService}
}

// CheckUpcomingEvents triggers one sweep. A 500 is returned only when a
// bulk read fails; per-event failures are reported inside results.
func (h *SchedulerHandler) CheckUpcomingEvents(c *gin.Context) {
	report, err := h.schedulerService.CheckUpcomingEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
