// File: internal/handler/auth/login_test.go
package auth

import (
	"context"
	"net/http"
	"testing"

	"devtask/internal/config"
	"devtask/internal/database"
	"devtask/internal/model"
	"devtask/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func loginConfig() *config.Config {
	return &config.Config{
		SecretKey:                "testsecret",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 60,
	}
}

func TestLoginHandler(t *testing.T) {
	cfg := loginConfig()

	// bind error
	ctx, rec := newJSONCtx(t, http.MethodPost, "{not json")
	h := LoginHandler(&database.FakeDB{}, cfg)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	ctx, rec = newJSONCtx(t, http.MethodPost, `{"email":"a@x.com"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// user not found
	ctx, rec = newJSONCtx(t, http.MethodPost, `{"email":"a@x.com","password":"secret1"}`)
	h = LoginHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeUserRow{scanErr: pgx.ErrNoRows}
		},
	}, cfg)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Incorrect email or password")

	// wrong password
	goodHash, err := service.HashPassword("secret1")
	require.NoError(t, err)
	user := &model.User{ID: 1, Email: "a@x.com", PasswordHash: goodHash, IsActive: true}
	ctx, rec = newJSONCtx(t, http.MethodPost, `{"email":"a@x.com","password":"wrongpw"}`)
	h = LoginHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeUserRow{user: user} },
	}, cfg)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Incorrect email or password")

	// issue token error (SECRET_KEY 未設定)
	ctx, rec = newJSONCtx(t, http.MethodPost, `{"email":"a@x.com","password":"secret1"}`)
	h = LoginHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeUserRow{user: user} },
	}, &config.Config{Algorithm: "HS256"})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	ctx, rec = newJSONCtx(t, http.MethodPost, `{"email":"a@x.com","password":"secret1"}`)
	h = LoginHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeUserRow{user: user} },
	}, cfg)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "access_token")
	require.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}
