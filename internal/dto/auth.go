package dto

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are carried by the admin session cookie.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
