package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/filestorage"
)

const resourceSubPath = "resources"

// ResourceService handles academic resource listing, upload and download
type ResourceService struct {
	resourceRepo *repositories.ResourceRepository
	storage      filestorage.Storage
	logger       zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(
	resourceRepo *repositories.ResourceRepository,
	storage filestorage.Storage,
	logger zerolog.Logger,
) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		storage:      storage,
		logger:       logger,
	}
}

// ListResources retrieves resources matching the filter
func (s *ResourceService) ListResources(ctx context.Context, filter dto.ResourceFilter) ([]*models.AcademicResource, error) {
	return s.resourceRepo.List(ctx, filter)
}

// UploadResource stores the file and records its metadata
func (s *ResourceService) UploadResource(ctx context.Context, uploaderID int64, req dto.UploadResourceRequest, fileHeader *multipart.FileHeader) (*models.AcademicResource, error) {
	storedPath, err := s.storage.SaveFile(fileHeader, resourceSubPath)
	if err != nil {
		return nil, err
	}

	resource := &models.AcademicResource{
		Course:       strings.TrimSpace(req.Course),
		Branch:       strings.TrimSpace(req.Branch),
		Year:         req.Year,
		Subject:      strings.TrimSpace(req.Subject),
		ResourceType: strings.TrimSpace(req.ResourceType),
		Title:        strings.TrimSpace(req.Title),
		FilePath:     storedPath,
		UploadedBy:   &uploaderID,
	}

	if _, err := s.resourceRepo.Create(ctx, resource); err != nil {
		// Orphaned file cleanup on metadata failure
		if delErr := s.storage.DeleteFile(storedPath); delErr != nil {
			s.logger.Error().Err(delErr).Str("path", storedPath).Msg("Failed to clean up orphaned upload")
		}
		return nil, err
	}

	s.logger.Info().
		Int64("resourceId", resource.ID).
		Int64("uploaderId", uploaderID).
		Str("title", resource.Title).
		Msg("Resource uploaded")
	return resource, nil
}

// DownloadResource bumps the view counter and resolves the file on disk
func (s *ResourceService) DownloadResource(ctx context.Context, resourceID int64) (*models.AcademicResource, string, error) {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, "", err
	}

	views, err := s.resourceRepo.IncrementViews(ctx, resourceID)
	if err != nil {
		return nil, "", err
	}
	resource.Views = views

	return resource, s.storage.FullPath(resource.FilePath), nil
}
