package api

import (
	"errors"
	"net/http"

	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateHandler holds the workout template service dependency.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// --- DTOs ---

type TemplateEntryRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Sets       int    `json:"sets" binding:"required,min=1"`
	Reps       string `json:"reps" binding:"required"`
	RestSec    int    `json:"restSec" binding:"omitempty,min=0"`
	Notes      string `json:"notes"`
}

type CreateTemplateRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Level       string                 `json:"level" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Entries     []TemplateEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

func mapEntries(reqs []TemplateEntryRequest) ([]domain.TemplateEntry, error) {
	entries := make([]domain.TemplateEntry, len(reqs))
	for i, req := range reqs {
		exerciseID, err := primitive.ObjectIDFromHex(req.ExerciseID)
		if err != nil {
			return nil, errors.New("invalid exercise ID format in entry")
		}
		entries[i] = domain.TemplateEntry{
			ExerciseID: exerciseID,
			Sets:       req.Sets,
			Reps:       req.Reps,
			RestSec:    req.RestSec,
			Notes:      req.Notes,
		}
	}
	return entries, nil
}

// --- Handler Methods ---

// CreateTemplate creates a workout template from saved catalog exercises.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return
	}

	entries, err := mapEntries(req.Entries)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), userID, req.Name, req.Description, req.Level, entries)
	if err != nil {
		if errors.Is(err, service.ErrTemplateInvalidEntry) || errors.Is(err, service.ErrTemplateWithoutEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create template.")
		}
		return
	}

	c.JSON(http.StatusCreated, template)
}

// ListTemplates retrieves all workout templates.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve templates.")
		return
	}
	if templates == nil {
		templates = []domain.WorkoutTemplate{}
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplate retrieves a single template by id.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid template ID format.")
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve template.")
		}
		return
	}

	c.JSON(http.StatusOK, template)
}

// UpdateTemplate modifies an existing template.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid template ID format.")
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entries, err := mapEntries(req.Entries)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), &domain.WorkoutTemplate{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		Entries:     entries,
	})
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrTemplateInvalidEntry) || errors.Is(err, service.ErrTemplateWithoutEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update template.")
		}
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate removes a template.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid template ID format.")
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete template.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
