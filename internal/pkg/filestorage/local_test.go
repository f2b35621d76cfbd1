package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// buildFileHeader runs a synthetic upload through the multipart machinery so
// SaveFile sees a real *multipart.FileHeader.
func buildFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveFileAndDelete(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	header := buildFileHeader(t, "notes.pdf", "pdf content")

	storedPath, err := storage.SaveFile(header, "resources")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(storedPath, "resources"+string(filepath.Separator)))
	assert.True(t, strings.HasSuffix(storedPath, ".pdf"))

	data, err := os.ReadFile(storage.FullPath(storedPath))
	require.NoError(t, err)
	assert.Equal(t, "pdf content", string(data))

	require.NoError(t, storage.DeleteFile(storedPath))
	_, err = os.Stat(storage.FullPath(storedPath))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveFileRejectsDisallowedExtension(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	header := buildFileHeader(t, "malware.exe", "binary")

	_, err = storage.SaveFile(header, "resources")
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
}

func TestSaveFileUppercaseExtension(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	header := buildFileHeader(t, "SLIDES.PPTX", "slides")

	storedPath, err := storage.SaveFile(header, "resources")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(storedPath, ".pptx"))
}

func TestDeleteFileMissingIsNoError(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile("resources/does-not-exist.pdf"))
}

func TestSaveFileUniqueNames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	first, err := storage.SaveFile(buildFileHeader(t, "same.pdf", "a"), "resources")
	require.NoError(t, err)
	second, err := storage.SaveFile(buildFileHeader(t, "same.pdf", "b"), "resources")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
