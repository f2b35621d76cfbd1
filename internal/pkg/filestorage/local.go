package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// MaxUploadSize is the largest accepted upload in bytes (16 MB)
const MaxUploadSize = 16 * 1024 * 1024

// allowedExtensions are the file types accepted for academic resources
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".ppt":  true,
	".pptx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// LocalStorage stores uploaded files on the local filesystem under a base
// directory. Stored paths are relative to that base so the directory can move.
type LocalStorage struct {
	basePath string
	logger   zerolog.Logger
}

// NewLocalStorage creates a LocalStorage rooted at basePath
func NewLocalStorage(basePath string, logger zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, logger: logger}, nil
}

// SaveFile validates and stores an uploaded file under subPath. The stored
// name is a random UUID with the original extension so uploads never collide.
func (s *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader.Size > MaxUploadSize {
		return "", apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", apperrors.ErrFileTypeNotAllowed
	}

	dir := filepath.Join(s.basePath, subPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(dir, storedName)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	s.logger.Debug().
		Str("originalName", fileHeader.Filename).
		Str("storedPath", filepath.Join(subPath, storedName)).
		Msg("File stored")

	return filepath.Join(subPath, storedName), nil
}

// DeleteFile removes a previously stored file. Missing files are not an error.
func (s *LocalStorage) DeleteFile(storedPath string) error {
	err := os.Remove(filepath.Join(s.basePath, storedPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// FullPath resolves a stored path to its absolute location on disk
func (s *LocalStorage) FullPath(storedPath string) string {
	return filepath.Join(s.basePath, storedPath)
}
