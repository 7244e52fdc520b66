package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims identifies the expense owner a bearer token was issued to
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
