package service

import (
	"context"
	"errors"

	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPostNotFound   = errors.New("blog post not found")
	ErrSlugTaken      = errors.New("a post with this slug already exists")
	ErrTicketNotFound = errors.New("support ticket not found")
)

// --- Service Interface ---

// ContentService groups the site-content operations the dashboard exposes:
// blog posts and support tickets. Post generation/translation happens in a
// separate system; this layer is plain CRUD over what that system produced.
type ContentService interface {
	CreatePost(ctx context.Context, authorID primitive.ObjectID, title, slug, body string, tags []string, published bool) (*domain.BlogPost, error)
	GetPost(ctx context.Context, id primitive.ObjectID) (*domain.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	UpdatePost(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) error

	SubmitTicket(ctx context.Context, email, subject, message string) (*domain.SupportTicket, error)
	ListTickets(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error)
	UpdateTicket(ctx context.Context, id primitive.ObjectID, status domain.TicketStatus, reply string) (*domain.SupportTicket, error)
}

// --- Service Implementation ---

type contentService struct {
	blogRepo   repository.BlogRepository
	ticketRepo repository.TicketRepository
}

// NewContentService creates a new instance of contentService.
func NewContentService(blogRepo repository.BlogRepository, ticketRepo repository.TicketRepository) ContentService {
	return &contentService{
		blogRepo:   blogRepo,
		ticketRepo: ticketRepo,
	}
}

// CreatePost creates a new blog post for the marketing site.
func (s *contentService) CreatePost(ctx context.Context, authorID primitive.ObjectID, title, slug, body string, tags []string, published bool) (*domain.BlogPost, error) {
	if title == "" || slug == "" {
		return nil, errors.New("post title and slug are required")
	}
	if authorID == primitive.NilObjectID {
		return nil, errors.New("author ID is required")
	}

	post := &domain.BlogPost{
		Title:     title,
		Slug:      slug,
		Body:      body,
		Tags:      tags,
		Published: published,
		AuthorID:  authorID,
	}

	postID, err := s.blogRepo.Create(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return s.blogRepo.GetByID(ctx, postID)
}

// GetPost retrieves a single post by id.
func (s *contentService) GetPost(ctx context.Context, id primitive.ObjectID) (*domain.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// GetPostBySlug retrieves a post by its URL slug (public site path).
func (s *contentService) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves posts, optionally restricted to published ones.
func (s *contentService) ListPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	return s.blogRepo.List(ctx, publishedOnly)
}

// UpdatePost modifies an existing post.
func (s *contentService) UpdatePost(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	if post.ID == primitive.NilObjectID {
		return nil, errors.New("post ID is required")
	}

	err := s.blogRepo.Update(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.blogRepo.GetByID(ctx, post.ID)
}

// DeletePost removes a post.
func (s *contentService) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	err := s.blogRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// SubmitTicket records a contact-form submission from the public site.
func (s *contentService) SubmitTicket(ctx context.Context, email, subject, message string) (*domain.SupportTicket, error) {
	if email == "" || message == "" {
		return nil, errors.New("email and message are required")
	}

	ticket := &domain.SupportTicket{
		Email:   email,
		Subject: subject,
		Message: message,
	}

	ticketID, err := s.ticketRepo.Create(ctx, ticket)
	if err != nil {
		return nil, err
	}
	ticket.ID = ticketID
	return ticket, nil
}

// ListTickets retrieves tickets for the dashboard, optionally by status.
func (s *contentService) ListTickets(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error) {
	return s.ticketRepo.List(ctx, status)
}

// UpdateTicket moves a ticket through its lifecycle.
func (s *contentService) UpdateTicket(ctx context.Context, id primitive.ObjectID, status domain.TicketStatus, reply string) (*domain.SupportTicket, error) {
	if status == "" {
		return nil, errors.New("ticket status is required")
	}

	err := s.ticketRepo.UpdateStatus(ctx, id, status, reply)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return s.ticketRepo.GetByID(ctx, id)
}
