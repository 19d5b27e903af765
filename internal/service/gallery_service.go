package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/repository"
	"fitflow/catalog-api/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrGalleryItemNotFound = errors.New("gallery item not found")
)

// --- Service Interface ---

// GalleryService manages dashboard media uploads: browsers upload and
// download straight against S3 through presigned URLs, this layer only
// mints the URLs and keeps the metadata.
type GalleryService interface {
	RequestUpload(ctx context.Context, uploaderID primitive.ObjectID, fileName, contentType string) (uploadURL string, item *domain.GalleryItem, err error)
	GetDownloadURL(ctx context.Context, id primitive.ObjectID) (string, *domain.GalleryItem, error)
	ListItems(ctx context.Context) ([]domain.GalleryItem, error)
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

type galleryService struct {
	galleryRepo repository.GalleryRepository
	fileStorage storage.FileStorage
}

// NewGalleryService creates a new instance of galleryService.
func NewGalleryService(galleryRepo repository.GalleryRepository, fileStorage storage.FileStorage) GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		fileStorage: fileStorage,
	}
}

// RequestUpload mints a presigned PUT URL and records the pending item.
// The object key is generated server-side; client file names only survive
// as metadata.
func (s *galleryService) RequestUpload(ctx context.Context, uploaderID primitive.ObjectID, fileName, contentType string) (string, *domain.GalleryItem, error) {
	if uploaderID == primitive.NilObjectID {
		return "", nil, errors.New("uploader ID is required")
	}
	if fileName == "" || contentType == "" {
		return "", nil, errors.New("file name and content type are required")
	}

	objectKey := fmt.Sprintf("gallery/%s/%s%s", uploaderID.Hex(), uuid.NewString(), path.Ext(fileName))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", nil, err
	}

	item := &domain.GalleryItem{
		UploaderID:  uploaderID,
		S3ObjectKey: objectKey,
		FileName:    fileName,
		ContentType: contentType,
	}

	itemID, err := s.galleryRepo.Create(ctx, item)
	if err != nil {
		return "", nil, err
	}
	item.ID = itemID

	return uploadURL, item, nil
}

// GetDownloadURL mints a presigned GET URL for an uploaded item.
func (s *galleryService) GetDownloadURL(ctx context.Context, id primitive.ObjectID) (string, *domain.GalleryItem, error) {
	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrGalleryItemNotFound
		}
		return "", nil, err
	}

	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, item.S3ObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", nil, err
	}

	return downloadURL, item, nil
}

// ListItems retrieves all gallery metadata.
func (s *galleryService) ListItems(ctx context.Context) ([]domain.GalleryItem, error) {
	return s.galleryRepo.List(ctx)
}

// DeleteItem removes the S3 object first, then the metadata.
func (s *galleryService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGalleryItemNotFound
		}
		return err
	}

	if err := s.fileStorage.DeleteObject(ctx, item.S3ObjectKey); err != nil {
		return err
	}

	return s.galleryRepo.Delete(ctx, id)
}
