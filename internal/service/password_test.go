// File: internal/service/password_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restorePasswordGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	pwd := "secret1"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	// 每次加鹽，同一組密碼產生不同哈希
	hash2, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	require.NoError(t, ComparePassword(hash, "secret1"))
	require.Error(t, ComparePassword(hash, "wrong"))

	// 哈希格式錯誤回傳錯誤而非 panic
	require.Error(t, ComparePassword("not-a-bcrypt-hash", "secret1"))
	require.Error(t, ComparePassword("", "secret1"))
}
