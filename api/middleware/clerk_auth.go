package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	domainErrors "gitcraft-go-server/domain/errors"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/gin-gonic/gin"
)

// TokenVerifier 校验会话 Token 并返回其 claims
type TokenVerifier func(ctx context.Context, token string) (*clerk.SessionClaims, error)

// VerifyClerkToken 使用 Clerk JWKS 校验（SDK 会自动获取并缓存公钥）
func VerifyClerkToken(ctx context.Context, token string) (*clerk.SessionClaims, error) {
	return jwt.Verify(ctx, &jwt.VerifyParams{Token: token})
}

// ClerkAuth Clerk JWT 认证中间件
// 校验失败返回 401，成功后把用户 ID 和组织 ID 写入 Context
func ClerkAuth(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 提取 Bearer Token
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if authHeader == "" || token == "" {
			abortUnauthenticated(c, "missing Authorization header")
			return
		}

		// 2. 校验签名和过期时间
		claims, err := verify(c.Request.Context(), token)
		if err != nil {
			slog.Debug("token verification failed", "component", "auth", "err", err)
			abortUnauthenticated(c, "invalid token")
			return
		}
		if claims.Subject == "" {
			abortUnauthenticated(c, "token has no subject")
			return
		}

		// 3. 把身份信息交给后续 Controller
		c.Set(ContextKeyUserID, claims.Subject)
		c.Set(ContextKeyOrgID, claims.ActiveOrganizationID)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"ok":      false,
		"error":   domainErrors.KindUnauthenticated,
		"message": message,
	})
}
