package transfer

import "github.com/golang-jwt/jwt/v5"

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Remember bool   `json:"remember" form:"remember"`
}

type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
