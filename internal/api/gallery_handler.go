package api

import (
	"errors"
	"net/http"

	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryHandler holds the gallery service dependency.
type GalleryHandler struct {
	galleryService service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// --- DTOs ---

type RequestUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type RequestUploadResponse struct {
	UploadURL string             `json:"uploadUrl"`
	Item      domain.GalleryItem `json:"item"`
}

type DownloadURLResponse struct {
	DownloadURL string             `json:"downloadUrl"`
	Item        domain.GalleryItem `json:"item"`
}

// --- Handler Methods ---

// RequestUpload mints a presigned S3 upload URL for a dashboard media file.
func (h *GalleryHandler) RequestUpload(c *gin.Context) {
	var req RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	uploaderID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return
	}

	uploadURL, item, err := h.galleryService.RequestUpload(c.Request.Context(), uploaderID, req.FileName, req.ContentType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to prepare upload.")
		return
	}

	c.JSON(http.StatusCreated, RequestUploadResponse{UploadURL: uploadURL, Item: *item})
}

// GetDownloadURL mints a presigned S3 download URL for a gallery item.
func (h *GalleryHandler) GetDownloadURL(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid gallery item ID format.")
		return
	}

	downloadURL, item, err := h.galleryService.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGalleryItemNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to prepare download.")
		}
		return
	}

	c.JSON(http.StatusOK, DownloadURLResponse{DownloadURL: downloadURL, Item: *item})
}

// ListItems retrieves all gallery item metadata.
func (h *GalleryHandler) ListItems(c *gin.Context) {
	items, err := h.galleryService.ListItems(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve gallery items.")
		return
	}
	if items == nil {
		items = []domain.GalleryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// DeleteItem removes a gallery item and its stored object.
func (h *GalleryHandler) DeleteItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid gallery item ID format.")
		return
	}

	if err := h.galleryService.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGalleryItemNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete gallery item.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
