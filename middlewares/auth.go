package middlewares

import (
	"fmt"
	"strings"

	"github.com/mrdlam87/little-lemon-api/pkg/resp"
	"github.com/mrdlam87/little-lemon-api/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and puts userId into the context.
// It carries no role information; see RequireRole.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			resp.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}

		var userID uint
		if v, ok := claims["userId"].(float64); ok {
			userID = uint(v)
		}
		if userID == 0 {
			resp.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}

// RequireRole admits users in any of the named groups. Membership is read
// from the DB on every request, so revoking a role takes effect immediately.
func RequireRole(groups *repository.GroupRepository, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get("userId")
		userID, _ := v.(uint)
		if userID == 0 {
			resp.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		for _, role := range roles {
			ok, err := groups.HasRole(userID, role)
			if err != nil {
				resp.ServerError(c, err)
				c.Abort()
				return
			}
			if ok {
				c.Next()
				return
			}
		}

		resp.Forbidden(c, "forbidden")
		c.Abort()
	}
}
