package api

import (
	"net/http"

	taskDelivery "todolist-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all routes for the application.
func SetupRoutes(r *gin.Engine, taskHandler *taskDelivery.TaskHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/find", taskHandler.FindTask)
			tasks.PATCH("/status", taskHandler.UpdateTaskStatus)
			tasks.POST("/remind", taskHandler.SendReminder)
		}
	}
}
