// File: internal/store/user_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"devtask/internal/database"
	"devtask/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==5 → GetUserByEmail
// 2) len(dest)==3 → CreateUser (id, is_active, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 5:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Email
		*dest[2].(*string) = u.PasswordHash
		*dest[3].(*bool) = u.IsActive
		*dest[4].(*time.Time) = u.CreatedAt
	case 3:
		*dest[0].(*int) = u.ID
		*dest[1].(*bool) = u.IsActive
		*dest[2].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

/* ---------- 完整測試 ---------- */

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		IsActive:     true,
		CreatedAt:    now,
	}

	/* --- GetUserByEmail --- */
	t.Run("GetUserByEmail success", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByEmail(context.Background(), p, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.True(t, u.IsActive)
		require.Equal(t, []any{"alice@example.com"}, gotArgs)
	})

	t.Run("GetUserByEmail not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByEmail(context.Background(), p, "nobody@example.com")
		require.Error(t, err)
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.Nil(t, u)
	})

	/* --- CreateUser --- */
	t.Run("CreateUser success", func(t *testing.T) {
		newUser := &model.User{Email: "bob@example.com", PasswordHash: "pwdhash"}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				u := *newUser
				u.ID = 42
				u.IsActive = true
				u.CreatedAt = now.Add(time.Hour)
				return &fakeUserRow{user: &u}
			},
		}
		created, err := CreateUser(context.Background(), p, newUser)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.True(t, created.IsActive)
	})

	t.Run("CreateUser error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("duplicate key")}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{Email: "dup@example.com"})
		require.Error(t, err)
	})
}
