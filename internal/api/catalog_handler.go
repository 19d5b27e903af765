package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitflow/catalog-api/internal/catalog"
	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/provider"
	"fitflow/catalog-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ImportExerciseRequest asks for one provider record to be saved into the
// app's own catalog.
type ImportExerciseRequest struct {
	SourceID string `json:"sourceId" binding:"required"`
}

// UpdateExerciseRequest carries the fields the dashboard form can edit.
type UpdateExerciseRequest struct {
	Name        string          `json:"name" binding:"required"`
	MuscleGroup string          `json:"muscleGroup" binding:"required"`
	Category    domain.Category `json:"category" binding:"required"`
	Equipment   string          `json:"equipment" binding:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl" binding:"omitempty,url"`
	AnimatedURL string          `json:"animatedUrl" binding:"omitempty,url"`
	VideoURL    string          `json:"videoUrl" binding:"omitempty,url"`
}

// CatalogExerciseResponse is the DTO for returning saved exercises.
type CatalogExerciseResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	MuscleGroup      string          `json:"muscleGroup"`
	Category         domain.Category `json:"category"`
	Equipment        string          `json:"equipment"`
	Description      string          `json:"description,omitempty"`
	SourceID         string          `json:"sourceId,omitempty"`
	ImageURL         string          `json:"imageUrl,omitempty"`
	AnimatedURL      string          `json:"animatedUrl,omitempty"`
	VideoURL         string          `json:"videoUrl,omitempty"`
	TargetMuscles    []string        `json:"targetMuscles,omitempty"`
	SecondaryMuscles []string        `json:"secondaryMuscles,omitempty"`
	Variations       []string        `json:"variations,omitempty"`
	RelatedIDs       []string        `json:"relatedIds,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// MapCatalogExerciseToResponse converts a domain.CatalogExercise to its DTO.
func MapCatalogExerciseToResponse(ex *domain.CatalogExercise) CatalogExerciseResponse {
	if ex == nil {
		return CatalogExerciseResponse{}
	}
	return CatalogExerciseResponse{
		ID:               ex.ID.Hex(),
		Name:             ex.Name,
		MuscleGroup:      ex.MuscleGroup,
		Category:         ex.Category,
		Equipment:        ex.Equipment,
		Description:      ex.Description,
		SourceID:         ex.SourceID,
		ImageURL:         ex.ImageURL,
		AnimatedURL:      ex.AnimatedURL,
		VideoURL:         ex.VideoURL,
		TargetMuscles:    ex.TargetMuscles,
		SecondaryMuscles: ex.SecondaryMuscles,
		Variations:       ex.Variations,
		RelatedIDs:       ex.RelatedIDs,
		CreatedAt:        ex.CreatedAt,
		UpdatedAt:        ex.UpdatedAt,
	}
}

// MapCatalogExercisesToResponse converts a slice of domain.CatalogExercise.
func MapCatalogExercisesToResponse(exercises []domain.CatalogExercise) []CatalogExerciseResponse {
	responses := make([]CatalogExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapCatalogExerciseToResponse(&ex)
	}
	return responses
}

// --- Handler Methods ---

// QueryProviders is the browser proxy boundary: it forwards one of the
// query shapes to the failover orchestrator server-side (so upstream
// credentials never reach the browser) and returns the raw provider JSON
// unchanged. Normalization happens on the caller's side in both browser
// and server code paths, so there is exactly one normalizer.
func (h *CatalogHandler) QueryProviders(c *gin.Context) {
	var req service.CatalogQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.catalogService.Query(c.Request.Context(), req)
	if err != nil {
		var invalidArg provider.InvalidArgumentError
		var bothFailed *provider.BothFailedError
		switch {
		case errors.Is(err, service.ErrUnknownAction):
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Unknown action %q", req.Action))
		case errors.As(err, &invalidArg):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &bothFailed):
			abortWithError(c, http.StatusBadGateway, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to query exercise providers.")
		}
		return
	}

	c.Header("X-Catalog-Provider", result.Provider)
	c.Data(http.StatusOK, "application/json", result.Raw)
}

// SearchExercises is the server-side render path: same query shapes, but
// normalized records with resolved media URLs.
func (h *CatalogHandler) SearchExercises(c *gin.Context) {
	var req service.CatalogQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercises, err := h.catalogService.SearchNormalized(c.Request.Context(), req)
	if err != nil {
		var invalidArg provider.InvalidArgumentError
		var bothFailed *provider.BothFailedError
		switch {
		case errors.Is(err, service.ErrUnknownAction):
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Unknown action %q", req.Action))
		case errors.As(err, &invalidArg):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &bothFailed):
			abortWithError(c, http.StatusBadGateway, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to query exercise providers.")
		}
		return
	}

	if exercises == nil {
		exercises = []catalog.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// GetBodyParts returns the static body-part vocabulary for search filters.
func (h *CatalogHandler) GetBodyParts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bodyParts": catalog.BodyParts()})
}

// GetEquipments returns the static equipment vocabulary for search filters.
func (h *CatalogHandler) GetEquipments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"equipments": catalog.Equipments()})
}

// ImportExercise fetches one provider record by id and saves its catalog
// projection.
func (h *CatalogHandler) ImportExercise(c *gin.Context) {
	var req ImportExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.Import(c.Request.Context(), req.SourceID)
	if err != nil {
		var invalidArg provider.InvalidArgumentError
		var bothFailed *provider.BothFailedError
		switch {
		case errors.Is(err, service.ErrAlreadyImported):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrEmptyProviderBody):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.As(err, &invalidArg):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &bothFailed):
			abortWithError(c, http.StatusBadGateway, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to import exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapCatalogExerciseToResponse(exercise))
}

// ListSavedExercises retrieves all saved catalog exercises.
func (h *CatalogHandler) ListSavedExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListSaved(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}

	if exercises == nil {
		c.JSON(http.StatusOK, []CatalogExerciseResponse{})
		return
	}

	c.JSON(http.StatusOK, MapCatalogExercisesToResponse(exercises))
}

// GetSavedExercise retrieves a single saved exercise by id.
func (h *CatalogHandler) GetSavedExercise(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	exercise, err := h.catalogService.GetSaved(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, MapCatalogExerciseToResponse(exercise))
}

// UpdateSavedExercise modifies the editable fields of a saved exercise.
func (h *CatalogHandler) UpdateSavedExercise(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.UpdateSaved(c.Request.Context(), &domain.CatalogExercise{
		ID:          id,
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Category:    req.Category,
		Equipment:   req.Equipment,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AnimatedURL: req.AnimatedURL,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, MapCatalogExerciseToResponse(exercise))
}

// DeleteSavedExercise removes a saved exercise from the catalog.
func (h *CatalogHandler) DeleteSavedExercise(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	if err := h.catalogService.DeleteSaved(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
