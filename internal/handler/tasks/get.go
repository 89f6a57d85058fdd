// File: internal/handler/tasks/get.go
package tasks

import (
	"errors"
	"net/http"
	"strconv"

	"devtask/internal/database"
	"devtask/internal/dto"
	"devtask/internal/middleware"
	"devtask/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// GetTaskHandler 取得單一任務
// @Summary     取得任務
// @Description 取得當前使用者的單一任務，不存在或非本人擁有一律回傳 404
// @Tags        tasks
// @Produce     json
// @Param       id path int true "任務 ID"
// @Success     200 {object} dto.TaskResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [get]
func GetTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Could not validate credentials"})
		}

		taskID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Task not found"})
		}

		task, err := store.GetTaskByID(c.Request().Context(), db, user.ID, taskID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Task not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}
		return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
	}
}
