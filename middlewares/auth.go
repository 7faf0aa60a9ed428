package middlewares

import (
	"fmt"
	"strings"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/configs"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/resp"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and stores the request identity.
// When roles are given, the caller's role must be one of them.
func AuthMiddleware(cfg *configs.Config, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
			c.Abort()
			return
		}

		utils.SetIdentity(c, utils.Identity{UserID: claims.UserID, Role: claims.Role})

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Error(c, apperr.E(apperr.CodeForbidden, "Forbidden"))
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
