package handler

import (
	"time"

	"github.com/distrilink/fieldsales/internal/auth/jwt"
)

func mustNewJWTService() *jwt.Service {
	s, _ := jwt.NewService(jwt.Config{SecretKey: "this-is-a-very-long-secret-key-for-testing", Duration: time.Hour})
	return s
}
