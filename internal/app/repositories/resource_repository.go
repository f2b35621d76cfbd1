package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// ResourceRepository handles database operations for academic resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// List retrieves academic resources matching the filter, newest first
func (r *ResourceRepository) List(ctx context.Context, filter dto.ResourceFilter) ([]*models.AcademicResource, error) {
	queryBuilder := squirrel.Select(
		"ar.id", "ar.course", "ar.branch", "ar.year", "ar.subject", "ar.resource_type",
		"ar.title", "ar.file_path", "ar.uploaded_by", "ar.upload_date", "ar.views",
		"u.name AS uploader_name",
	).
		From("academic_resources ar").
		LeftJoin("users u ON ar.uploaded_by = u.id").
		OrderBy("ar.upload_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Course != "" {
		queryBuilder = queryBuilder.Where("ar.course = ?", filter.Course)
	}
	if filter.Branch != "" {
		queryBuilder = queryBuilder.Where("ar.branch = ?", filter.Branch)
	}
	if filter.Year != 0 {
		queryBuilder = queryBuilder.Where("ar.year = ?", filter.Year)
	}
	if filter.Subject != "" {
		queryBuilder = queryBuilder.Where("ar.subject = ?", filter.Subject)
	}
	if filter.ResourceType != "" {
		queryBuilder = queryBuilder.Where("ar.resource_type = ?", filter.ResourceType)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.AcademicResource
	for rows.Next() {
		var res models.AcademicResource
		err := rows.Scan(
			&res.ID,
			&res.Course,
			&res.Branch,
			&res.Year,
			&res.Subject,
			&res.ResourceType,
			&res.Title,
			&res.FilePath,
			&res.UploadedBy,
			&res.UploadDate,
			&res.Views,
			&res.UploaderName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		resources = append(resources, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resources: %w", err)
	}
	return resources, nil
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.AcademicResource, error) {
	query := `
		SELECT id, course, branch, year, subject, resource_type, title, file_path,
		       uploaded_by, upload_date, views
		FROM academic_resources
		WHERE id = $1
	`
	var res models.AcademicResource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.Course,
		&res.Branch,
		&res.Year,
		&res.Subject,
		&res.ResourceType,
		&res.Title,
		&res.FilePath,
		&res.UploadedBy,
		&res.UploadDate,
		&res.Views,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademicResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}
	return &res, nil
}

// Create inserts a new academic resource
func (r *ResourceRepository) Create(ctx context.Context, res *models.AcademicResource) (int64, error) {
	query := `
		INSERT INTO academic_resources (course, branch, year, subject, resource_type, title, file_path, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, upload_date
	`
	err := r.db.QueryRow(ctx, query,
		res.Course, res.Branch, res.Year, res.Subject,
		res.ResourceType, res.Title, res.FilePath, res.UploadedBy).
		Scan(&res.ID, &res.UploadDate)
	if err != nil {
		return 0, fmt.Errorf("error creating resource: %w", err)
	}
	return res.ID, nil
}

// IncrementViews bumps the download counter and returns the new value
func (r *ResourceRepository) IncrementViews(ctx context.Context, id int64) (int, error) {
	var views int
	query := `UPDATE academic_resources SET views = views + 1 WHERE id = $1 RETURNING views`
	err := r.db.QueryRow(ctx, query, id).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrAcademicResourceNotFound
		}
		return 0, fmt.Errorf("error incrementing views: %w", err)
	}
	return views, nil
}

// CountResources returns the total number of academic resources
func (r *ResourceRepository) CountResources(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM academic_resources`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting resources: %w", err)
	}
	return count, nil
}
