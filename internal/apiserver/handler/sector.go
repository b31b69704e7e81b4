package handler

import (
	"errors"
	"net/http"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/common/dto"
	"github.com/distrilink/fieldsales/internal/common/errorx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateSector handles sector creation
func (h *Handler) CreateSector(c *gin.Context) {
	var req dto.SectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}
	if req.Name == "" {
		errorx.Respond(c, errorx.Validation("Sector name is required"))
		return
	}

	sector := &database.Sector{Name: req.Name, Description: req.Description}
	if err := h.db.CreateSector(c.Request.Context(), sector); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			errorx.Respond(c, errorx.Conflict("Sector with this name already exists"))
			return
		}
		h.logger.Error("failed to create sector", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusCreated, sector)
}

// ListSectors handles listing all sectors
func (h *Handler) ListSectors(c *gin.Context) {
	sectors, err := h.db.ListSectors(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list sectors", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// GetSector handles fetching a single sector by id
func (h *Handler) GetSector(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid sector id"))
		return
	}

	sector, err := h.db.GetSectorByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Sector not found"))
			return
		}
		h.logger.Error("failed to fetch sector", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}
	c.JSON(http.StatusOK, sector)
}

// UpdateSector handles sector updates
func (h *Handler) UpdateSector(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid sector id"))
		return
	}

	var req dto.SectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorx.Respond(c, errorx.Validation(err.Error()))
		return
	}
	if req.Name == "" {
		errorx.Respond(c, errorx.Validation("Sector name is required"))
		return
	}

	ctx := c.Request.Context()
	sector, err := h.db.GetSectorByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Sector not found"))
			return
		}
		h.logger.Error("failed to fetch sector", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	sector.Name = req.Name
	sector.Description = req.Description
	if err := h.db.UpdateSector(ctx, sector); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			errorx.Respond(c, errorx.Conflict("Sector with this name already exists"))
			return
		}
		h.logger.Error("failed to update sector", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusOK, sector)
}

// DeleteSector handles sector deletion
func (h *Handler) DeleteSector(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		errorx.Respond(c, errorx.Validation("Invalid sector id"))
		return
	}

	if err := h.db.DeleteSector(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorx.Respond(c, errorx.NotFound("Sector not found"))
			return
		}
		h.logger.Error("failed to delete sector", zap.Error(err))
		errorx.Respond(c, errorx.Internal("An error occurred."))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sector deleted successfully"})
}
