package filestorage

import (
	"mime/multipart"
)

// Storage abstracts where uploaded files end up
type Storage interface {
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(filePath string) error
	FullPath(storedPath string) string
}
