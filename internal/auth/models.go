package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

// JWTClaims represents the claims carried by an access token
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
