package api

import (
	"errors"
	"net/http"

	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentHandler holds the content service dependency.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// --- DTOs ---

type CreatePostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Slug      string   `json:"slug" binding:"required"`
	Body      string   `json:"body"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

type UpdatePostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Slug      string   `json:"slug" binding:"required"`
	Body      string   `json:"body"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

type SubmitTicketRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type UpdateTicketRequest struct {
	Status domain.TicketStatus `json:"status" binding:"required,oneof=open in_review resolved closed"`
	Reply  string              `json:"reply"`
}

// --- Blog Handlers ---

// CreatePost creates a blog post from the dashboard.
func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	authorIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify author from token.")
		return
	}
	authorID, err := primitive.ObjectIDFromHex(authorIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid author ID format in token.")
		return
	}

	post, err := h.contentService.CreatePost(c.Request.Context(), authorID, req.Title, req.Slug, req.Body, req.Tags, req.Published)
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create post.")
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts lists posts. The public route forces publishedOnly; the
// dashboard route includes drafts.
func (h *ContentHandler) ListPosts(publishedOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := h.contentService.ListPosts(c.Request.Context(), publishedOnly)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve posts.")
			return
		}
		if posts == nil {
			posts = []domain.BlogPost{}
		}
		c.JSON(http.StatusOK, posts)
	}
}

// GetPostBySlug serves one published post to the public site.
func (h *ContentHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.contentService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve post.")
		}
		return
	}

	// Drafts stay invisible on the public path.
	if !post.Published {
		abortWithError(c, http.StatusNotFound, service.ErrPostNotFound.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost modifies a post from the dashboard.
func (h *ContentHandler) UpdatePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format.")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	post, err := h.contentService.UpdatePost(c.Request.Context(), &domain.BlogPost{
		ID:        id,
		Title:     req.Title,
		Slug:      req.Slug,
		Body:      req.Body,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update post.")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post.
func (h *ContentHandler) DeletePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format.")
		return
	}

	if err := h.contentService.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete post.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Support Ticket Handlers ---

// SubmitTicket records a contact-form submission (public, no auth).
func (h *ContentHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ticket, err := h.contentService.SubmitTicket(c.Request.Context(), req.Email, req.Subject, req.Message)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to submit ticket.")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// ListTickets lists tickets for the dashboard, optionally by ?status=.
func (h *ContentHandler) ListTickets(c *gin.Context) {
	status := domain.TicketStatus(c.Query("status"))

	tickets, err := h.contentService.ListTickets(c.Request.Context(), status)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve tickets.")
		return
	}
	if tickets == nil {
		tickets = []domain.SupportTicket{}
	}
	c.JSON(http.StatusOK, tickets)
}

// UpdateTicket moves a ticket through its lifecycle.
func (h *ContentHandler) UpdateTicket(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid ticket ID format.")
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ticket, err := h.contentService.UpdateTicket(c.Request.Context(), id, req.Status, req.Reply)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update ticket.")
		}
		return
	}

	c.JSON(http.StatusOK, ticket)
}
