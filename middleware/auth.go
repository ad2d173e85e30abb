package middleware

import (
	"net/http"
	"strings"
	"time"

	"Circle/pkg/jwt"
	"Circle/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 校验 access token，临期时通过响应头下发新 token
func Auth(secret []byte, accessExpire time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		if jwt.ShouldRotateToken(claims, accessExpire/5) {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Admin, "access", accessExpire)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.Admin)

		c.Next()
	}
}
