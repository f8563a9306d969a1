package http

import (
	"github.com/gin-gonic/gin"

	"github.com/santiagotraba/task-manager-backend/internal/adapter/http/handlers"
	"github.com/santiagotraba/task-manager-backend/internal/adapter/http/middleware"
	"github.com/santiagotraba/task-manager-backend/internal/app/token"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens *token.Manager,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
) {
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Backend is running!")
	})

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.AuthMiddleware(tokens))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/subtasks", taskHandler.AddSubtask)
			tasks.PUT("/:id/subtasks/:subtaskId", taskHandler.UpdateSubtask)
		}
	}
}
