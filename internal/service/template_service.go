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
	ErrTemplateNotFound     = errors.New("workout template not found")
	ErrTemplateInvalidEntry = errors.New("template entry references an unknown catalog exercise")
	ErrTemplateWithoutEntry = errors.New("a workout template needs at least one entry")
)

// --- Service Interface ---
type TemplateService interface {
	CreateTemplate(ctx context.Context, createdBy primitive.ObjectID, name, description, level string, entries []domain.TemplateEntry) (*domain.WorkoutTemplate, error)
	GetTemplate(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutTemplate, error)
	ListTemplates(ctx context.Context) ([]domain.WorkoutTemplate, error)
	UpdateTemplate(ctx context.Context, template *domain.WorkoutTemplate) (*domain.WorkoutTemplate, error)
	DeleteTemplate(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

type templateService struct {
	templateRepo repository.TemplateRepository
	catalogRepo  repository.CatalogRepository
}

// NewTemplateService creates a new instance of templateService.
func NewTemplateService(templateRepo repository.TemplateRepository, catalogRepo repository.CatalogRepository) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		catalogRepo:  catalogRepo,
	}
}

// CreateTemplate creates a workout template after checking every entry
// points at a saved catalog exercise.
func (s *templateService) CreateTemplate(ctx context.Context, createdBy primitive.ObjectID, name, description, level string, entries []domain.TemplateEntry) (*domain.WorkoutTemplate, error) {
	if name == "" {
		return nil, errors.New("template name is required")
	}
	if createdBy == primitive.NilObjectID {
		return nil, errors.New("creator ID is required")
	}
	if len(entries) == 0 {
		return nil, ErrTemplateWithoutEntry
	}

	if err := s.validateEntries(ctx, entries); err != nil {
		return nil, err
	}

	template := &domain.WorkoutTemplate{
		Name:        name,
		Description: description,
		Level:       level,
		Entries:     entries,
		CreatedBy:   createdBy,
	}

	templateID, err := s.templateRepo.Create(ctx, template)
	if err != nil {
		return nil, err
	}

	return s.templateRepo.GetByID(ctx, templateID)
}

// GetTemplate retrieves a single template.
func (s *templateService) GetTemplate(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

// ListTemplates retrieves all templates.
func (s *templateService) ListTemplates(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	return s.templateRepo.List(ctx)
}

// UpdateTemplate modifies an existing template, re-checking its entries.
func (s *templateService) UpdateTemplate(ctx context.Context, template *domain.WorkoutTemplate) (*domain.WorkoutTemplate, error) {
	if template.ID == primitive.NilObjectID {
		return nil, errors.New("template ID is required")
	}
	if len(template.Entries) == 0 {
		return nil, ErrTemplateWithoutEntry
	}

	if err := s.validateEntries(ctx, template.Entries); err != nil {
		return nil, err
	}

	err := s.templateRepo.Update(ctx, template)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return s.templateRepo.GetByID(ctx, template.ID)
}

// DeleteTemplate removes a template.
func (s *templateService) DeleteTemplate(ctx context.Context, id primitive.ObjectID) error {
	err := s.templateRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	return nil
}

func (s *templateService) validateEntries(ctx context.Context, entries []domain.TemplateEntry) error {
	for _, entry := range entries {
		if entry.ExerciseID == primitive.NilObjectID {
			return ErrTemplateInvalidEntry
		}
		if _, err := s.catalogRepo.GetByID(ctx, entry.ExerciseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrTemplateInvalidEntry
			}
			return err
		}
	}
	return nil
}
