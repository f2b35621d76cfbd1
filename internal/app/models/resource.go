package models

import (
	"time"
)

// AcademicResource defines an uploaded study material based on the
// 'academic_resources' table
type AcademicResource struct {
	ID           int64     `json:"id" db:"id"`
	Course       string    `json:"course" db:"course" example:"B.Tech"`
	Branch       string    `json:"branch" db:"branch" example:"Computer Science"`
	Year         int       `json:"year" db:"year" example:"3"`
	Subject      string    `json:"subject" db:"subject" example:"Data Structures"`
	ResourceType string    `json:"resourceType" db:"resource_type" example:"notes"` // notes, pyq, syllabus...
	Title        string    `json:"title" db:"title"`
	FilePath     string    `json:"-" db:"file_path"` // Filesystem path, never exposed to clients
	UploadedBy   *int64    `json:"uploadedBy,omitempty" db:"uploaded_by"`
	UploadDate   time.Time `json:"uploadDate" db:"upload_date"`
	Views        int       `json:"views" db:"views"` // Download counter, only ever incremented
	UploaderName *string   `json:"uploaderName,omitempty"` // Relation, no db tag
}
