package transport

import (
	"github.com/ds124wfegd/contactremind/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(
	schedulerHandler *SchedulerHandler,
	reminderHandler *ReminderHandler,
	notificationHandler *NotificationHandler,
	settingsHandler *SettingsHandler,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// Scheduler invocation endpoint; кроном или вручную
	router.POST("/functions/v1/check-upcoming-events", schedulerHandler.CheckUpcomingEvents)

	// API routes
	api := router.Group("/api/v1")
	{
		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("", reminderHandler.CreateReminder)
			reminders.GET("/users/:user_id", reminderHandler.GetUserReminders)
			reminders.POST("/:id/complete", reminderHandler.CompleteReminder)
			reminders.DELETE("/:id", reminderHandler.DeleteReminder)
		}

		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.GET("/users/:user_id", notificationHandler.GetNotifications)
			notifications.GET("/users/:user_id/unread-count", notificationHandler.GetUnreadCount)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/users/:user_id/read-all", notificationHandler.MarkAllRead)
		}

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("/users/:user_id", settingsHandler.GetSettings)
			settings.PUT("/users/:user_id", settingsHandler.UpdateSettings)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return router
}
