// File: internal/handler/tasks/list.go
package tasks

import (
	"net/http"
	"strconv"

	"devtask/internal/database"
	"devtask/internal/dto"
	"devtask/internal/middleware"
	"devtask/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 1
	defaultSize = 20
)

// ListTasksHandler 分頁列出當前使用者的任務
// @Summary     列出任務
// @Description 依建立時間由新到舊分頁回傳當前使用者的任務
// @Tags        tasks
// @Produce     json
// @Param       page query int false "頁碼 (>=1)" default(1)
// @Param       size query int false "每頁筆數 (>=1)" default(20)
// @Success     200 {object} dto.TaskListResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks [get]
func ListTasksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Could not validate credentials"})
		}

		page, size := defaultPage, defaultSize
		if v := c.QueryParam("page"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "page and size must be positive integers"})
			}
			page = n
		}
		if v := c.QueryParam("size"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "page and size must be positive integers"})
			}
			size = n
		}
		if page < 1 || size < 1 {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "page and size must be positive integers"})
		}

		ctx := c.Request().Context()
		total, err := store.CountTasksByOwner(ctx, db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}
		items, err := store.ListTasksByOwner(ctx, db, user.ID, size, (page-1)*size)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}

		resp := dto.TaskListResponse{
			Items: make([]dto.TaskResponse, 0, len(items)),
			Total: total,
			Page:  page,
			Size:  size,
		}
		for i := range items {
			resp.Items = append(resp.Items, dto.NewTaskResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
