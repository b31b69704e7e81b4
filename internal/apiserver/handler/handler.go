package handler

import (
	"strconv"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/auth/jwt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the resource controllers' shared collaborators.
type Handler struct {
	db         database.Database
	jwtService *jwt.Service
	logger     *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(db database.Database, jwtService *jwt.Service, logger *zap.Logger) *Handler {
	return &Handler{
		db:         db,
		jwtService: jwtService,
		logger:     logger,
	}
}

// callerClaims returns the authenticated caller's claims from the context.
func callerClaims(c *gin.Context) (*jwt.Claims, bool) {
	claims, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	jwtClaims, ok := claims.(*jwt.Claims)
	return jwtClaims, ok
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
