package handler

import (
	"errors"
	"net/http"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/common/dto"
	"github.com/distrilink/fieldsales/internal/common/errorx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles user registration
func (h *Handler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}

	if req.Username == "" || req.Password == "" || req.RoleID == 0 {
		errorx.Respond(c, errorx.Validation("Username, password and role_id are required"))
		return
	}

	// The referenced role must exist
	role, err := h.db.GetRoleByID(c.Request.Context(), req.RoleID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.Validation("Role not found"))
			return
		}
		h.logger.Error("failed to look up role", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	user := &database.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashed),
		RoleID:   role.ID,
		IsActive: true,
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			errorx.Respond(c, errorx.Conflict("Username already exists"))
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusCreated, dto.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     role.RoleName,
	})
}

// Signin handles user login
func (h *Handler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}

	user, err := h.db.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "User is disabled"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username, user.Role.RoleName)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		errorx.Respond(c, errorx.Internal("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role.RoleName,
		},
	})
}

// ListUsers handles listing all users (Admin only)
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	out := make([]dto.UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserInfo{
			ID:       u.ID,
			Username: u.Username,
			FullName: u.FullName,
			Role:     u.Role.RoleName,
		})
	}
	c.JSON(http.StatusOK, out)
}
