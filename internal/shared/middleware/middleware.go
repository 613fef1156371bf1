package middleware

import (
	"context"
	"net/http"
	"strings"

	"venuehub/internal/shared/config"
	"venuehub/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// TokenDenylist reports whether a token id has been invalidated (logout).
type TokenDenylist interface {
	IsDenied(ctx context.Context, jti string) (bool, error)
}

// JWTAuth creates a bearer token authentication middleware
func JWTAuth(cfg *config.Config, denylist TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			c.Abort()
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})

		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			c.Abort()
			return
		}

		jti, _ := claims["jti"].(string)

		// Tokens surrendered via logout stay invalid until they expire
		if denylist != nil && jti != "" {
			denied, err := denylist.IsDenied(c.Request.Context(), jti)
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to verify token")
				c.Abort()
				return
			}
			if denied {
				response.Error(c, http.StatusUnauthorized, "Unauthenticated")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims["user_id"])
		c.Set("user_email", claims["email"])
		c.Set("token_jti", jti)
		if exp, ok := claims["exp"].(float64); ok {
			c.Set("token_exp", int64(exp))
		}

		c.Next()
	}
}
