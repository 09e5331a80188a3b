package api

import (
	"todolist-backend/internal/reminder"
	taskDelivery "todolist-backend/internal/task/delivery"
	taskUsecasePkg "todolist-backend/internal/task/usecase"
	"todolist-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// Handler wires the task usecase and reminder manager behind the HTTP surface
type Handler struct {
	taskHandler *taskDelivery.TaskHandler
	config      *config.Config
}

func NewHandler(taskUc taskUsecasePkg.TaskUsecase, reminderMgr *reminder.Manager, cfg *config.Config) *Handler {
	return &Handler{
		taskHandler: taskDelivery.NewTaskHandler(taskUc, reminderMgr),
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.taskHandler)

	return r.Run(addr)
}
