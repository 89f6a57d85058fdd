// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"
	"strings"

	"devtask/internal/config"
	"devtask/internal/database"
	"devtask/internal/model"
	"devtask/internal/service"
	"devtask/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 所有認證失敗一律回傳相同的 401 訊息，不洩漏失敗原因
const unauthorizedMessage = "Could not validate credentials"

func extractSubject(c echo.Context, cfg *config.Config) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
	}
	subject, err := service.VerifyAccessToken(cfg, parts[1])
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
	}
	return subject, nil
}

// RequireAuth 驗證 Bearer 令牌並解析對應的使用者放入 context。
// 令牌中的 subject 為使用者 Email；令牌失效與使用者不存在回傳相同結果。
func RequireAuth(db database.DB, cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, err := extractSubject(c, cfg)
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return err
			}
			user, err := store.GetUserByEmail(c.Request().Context(), db, subject)
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser 取出 RequireAuth 放入 context 的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}
