// File: internal/service/token_test.go
package service

import (
	"testing"
	"time"

	"devtask/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func restoreTokenGlobals() {
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                "testsecret",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 60,
	}
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	cfg := testConfig()

	// 缺少密鑰
	_, err := IssueAccessToken(&config.Config{Algorithm: "HS256"}, "a@x.com", time.Minute)
	require.Error(t, err)

	// 未知演算法
	_, err = IssueAccessToken(&config.Config{SecretKey: "s", Algorithm: "BOGUS"}, "a@x.com", time.Minute)
	require.Error(t, err)

	// ttl <= 0 採用設定檔預設值
	tok, err := IssueAccessToken(cfg, "a@x.com", 0)
	require.NoError(t, err)
	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("testsecret"), nil })
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Subject)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	cfg := testConfig()

	// 簽發後立即驗證回傳相同 subject
	tok, err := IssueAccessToken(cfg, "a@x.com", time.Minute)
	require.NoError(t, err)
	subject, err := VerifyAccessToken(cfg, tok)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", subject)

	// 缺少密鑰
	_, err = VerifyAccessToken(&config.Config{Algorithm: "HS256"}, tok)
	require.Error(t, err)

	// 格式錯誤
	_, err = VerifyAccessToken(cfg, "invalid")
	require.Error(t, err)

	// 換掉密鑰使所有既發令牌失效
	_, err = VerifyAccessToken(&config.Config{SecretKey: "other", Algorithm: "HS256"}, tok)
	require.Error(t, err)

	// none 演算法一律拒絕
	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "a@x.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(cfg, tokNone)
	require.Error(t, err)

	// 缺少 subject claim
	tokNoSub, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("testsecret"))
	_, err = VerifyAccessToken(cfg, tokNoSub)
	require.Error(t, err)

	// token.Valid == false 的防禦分支
	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: &jwt.RegisteredClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken(cfg, "whatever")
	require.Error(t, err)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	cfg := testConfig()

	// 以過去時間簽發，模擬 TTL 已過
	timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := IssueAccessToken(cfg, "a@x.com", time.Hour)
	require.NoError(t, err)

	timeNow = time.Now
	_, err = VerifyAccessToken(cfg, tok)
	require.Error(t, err)
}
