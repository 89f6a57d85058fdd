// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"devtask/internal/database"
	"devtask/internal/dto"
	"devtask/internal/model"
	"devtask/internal/service"
	"devtask/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// uniqueViolation Postgres 唯一約束違反的 SQLSTATE
const uniqueViolation = "23505"

// RegisterHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 以 Email 與密碼建立帳號，Email 重複時回傳 400
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RegisterRequest true "註冊資料"
// @Success     201 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		ctx := c.Request().Context()

		// 先檢查 Email 是否已註冊，避免對既有帳號白付哈希成本
		if _, err := store.GetUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Email already registered"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Email:        req.Email,
			PasswordHash: hash,
		}
		created, err := store.CreateUser(ctx, db, user)
		if err != nil {
			// 兩個並發註冊可能同時通過存在性檢查，唯一約束把後到者擋下
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
		}

		return c.JSON(http.StatusCreated, dto.NewUserResponse(created))
	}
}
