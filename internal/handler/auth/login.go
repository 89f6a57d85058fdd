// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"devtask/internal/config"
	"devtask/internal/database"
	"devtask/internal/dto"
	"devtask/internal/service"
	"devtask/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳存取令牌
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳 Bearer 存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// 查無使用者與密碼錯誤回傳相同訊息
		user, err := store.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Incorrect email or password"})
		}
		if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Incorrect email or password"})
		}

		token, err := service.IssueAccessToken(cfg, user.Email, 0)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token, TokenType: "bearer"})
	}
}
