// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"devtask/internal/cache"
	"devtask/internal/config"
	"devtask/internal/database"
	"devtask/internal/handler"
	"devtask/internal/handler/auth"
	"devtask/internal/handler/tasks"
	"devtask/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	// 健康檢查（公開）
	e.GET("/health", handler.HealthHandler(db, rdb))

	// 註冊與登入
	e.POST("/auth/register", auth.RegisterHandler(db))
	e.POST("/auth/login", auth.LoginHandler(db, cfg))

	// 任務 CRUD，一律要求 Bearer 令牌
	apiTasks := e.Group("/tasks", middleware.RequireAuth(db, cfg))
	apiTasks.POST("", tasks.CreateTaskHandler(db))
	apiTasks.GET("", tasks.ListTasksHandler(db))
	apiTasks.GET("/:id", tasks.GetTaskHandler(db))
	apiTasks.PUT("/:id", tasks.UpdateTaskHandler(db))
	apiTasks.DELETE("/:id", tasks.DeleteTaskHandler(db))
}
