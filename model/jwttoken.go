package model

import "github.com/golang-jwt/jwt/v5"

type AccessClaims struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
