// File: internal/handler/tasks/create.go
package tasks

import (
	"net/http"

	"devtask/internal/database"
	"devtask/internal/dto"
	"devtask/internal/middleware"
	"devtask/internal/model"
	"devtask/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateTaskHandler 建立任務
// @Summary     建立任務
// @Description 為當前使用者建立任務，status 預設 todo、time_logged 預設 0
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       body body dto.CreateTaskRequest true "任務資料"
// @Success     201 {object} dto.TaskResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks [post]
func CreateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Could not validate credentials"})
		}

		var req dto.CreateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if req.Status == "" {
			req.Status = string(model.StatusTodo)
		}

		// 擁有者一律取自已驗證的使用者，不信任任何客戶端欄位
		task := &model.Task{
			Title:      req.Title,
			Status:     model.TaskStatus(req.Status),
			TimeLogged: req.TimeLogged,
			OwnerID:    user.ID,
		}
		created, err := store.CreateTask(c.Request().Context(), db, task)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}

		return c.JSON(http.StatusCreated, dto.NewTaskResponse(created))
	}
}
