// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"devtask/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// 測試可覆寫的 jwt 函式
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// IssueAccessToken 以設定檔的密鑰與演算法簽發令牌，負載僅含 subject 與到期時間。
// ttl <= 0 時採用設定檔的預設有效期間。
func IssueAccessToken(cfg *config.Config, subject string, ttl time.Duration) (string, error) {
	if cfg.SecretKey == "" {
		return "", fmt.Errorf("SECRET_KEY not set")
	}
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm: %s", cfg.Algorithm)
	}
	if ttl <= 0 {
		ttl = cfg.AccessTokenTTL()
	}

	now := timeNow()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(cfg.SecretKey))
}

// VerifyAccessToken 驗證令牌簽章與到期時間並回傳 subject。
// 格式錯誤、簽章不符、演算法不符、缺少 subject 或已過期，一律回傳錯誤，
// 呼叫端不區分失敗原因。
func VerifyAccessToken(cfg *config.Config, tokenString string) (string, error) {
	if cfg.SecretKey == "" {
		return "", fmt.Errorf("SECRET_KEY not set")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := parseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != cfg.Algorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.SecretKey), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("missing subject claim")
	}
	return claims.Subject, nil
}
