package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thrivesecure/thrivesecure-backend/internal/config"
)

// GenerateJWT mints the session token returned to a signed-in user. Nothing
// in this API verifies it; clients carry it to collaborating services.
func GenerateJWT(email, role string, cfg *config.Config) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"role": role,
		"exp":  time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
		"iat":  time.Now().Unix(),
	})

	return token.SignedString([]byte(cfg.JWT.Secret))
}
