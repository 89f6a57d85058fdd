// File: internal/handler/tasks/update.go
package tasks

import (
	"errors"
	"net/http"
	"strconv"

	"devtask/internal/database"
	"devtask/internal/dto"
	"devtask/internal/middleware"
	"devtask/internal/model"
	"devtask/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// UpdateTaskHandler 部分更新任務
// @Summary     更新任務
// @Description 僅套用請求中出現的欄位，其餘維持原值並刷新 updated_at
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "任務 ID"
// @Param       body body dto.UpdateTaskRequest true "更新欄位"
// @Success     200 {object} dto.TaskResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [put]
func UpdateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Could not validate credentials"})
		}

		taskID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Task not found"})
		}

		var req dto.UpdateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if req.TimeLogged != nil && *req.TimeLogged < 0 {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "time_logged cannot be negative"})
		}

		patch := model.TaskPatch{
			Title:      req.Title,
			TimeLogged: req.TimeLogged,
		}
		if req.Status != nil {
			status := model.TaskStatus(*req.Status)
			patch.Status = &status
		}

		task, err := store.UpdateTask(c.Request().Context(), db, user.ID, taskID, patch)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Task not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}
		return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
	}
}
