package dto

import (
	"time"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// ResourceFilter narrows the academic resource listing. All fields optional.
type ResourceFilter struct {
	Course       string `form:"course"`
	Branch       string `form:"branch"`
	Year         int    `form:"year"`
	Subject      string `form:"subject"`
	ResourceType string `form:"resourceType"`
}

// UploadResourceRequest carries the metadata of a multipart upload. The file
// itself arrives as the "file" form field.
type UploadResourceRequest struct {
	Course       string `form:"course" binding:"required"`
	Branch       string `form:"branch" binding:"required"`
	Year         int    `form:"year" binding:"required,min=1,max=6"`
	Subject      string `form:"subject" binding:"required"`
	ResourceType string `form:"resourceType" binding:"required"`
	Title        string `form:"title" binding:"required"`
}

// ResourceResponse represents an academic resource in listings
type ResourceResponse struct {
	ID           int64     `json:"id"`
	Course       string    `json:"course"`
	Branch       string    `json:"branch"`
	Year         int       `json:"year"`
	Subject      string    `json:"subject"`
	ResourceType string    `json:"resourceType"`
	Title        string    `json:"title"`
	UploadDate   time.Time `json:"uploadDate"`
	Views        int       `json:"views"`
	UploaderName *string   `json:"uploaderName,omitempty"`
}

// NewResourceResponse maps an academic resource model to its response form
func NewResourceResponse(r *models.AcademicResource) *ResourceResponse {
	return &ResourceResponse{
		ID:           r.ID,
		Course:       r.Course,
		Branch:       r.Branch,
		Year:         r.Year,
		Subject:      r.Subject,
		ResourceType: r.ResourceType,
		Title:        r.Title,
		UploadDate:   r.UploadDate,
		Views:        r.Views,
		UploaderName: r.UploaderName,
	}
}
