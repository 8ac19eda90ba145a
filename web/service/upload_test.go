package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadRejectsMissingFilename(t *testing.T) {
	mediaDir := filepath.Join(t.TempDir(), "media")
	t.Setenv("MEDIA_FOLDER", mediaDir)

	svc := UploadService{}
	_, err := svc.Save("", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrNoFilename)
}

func TestUploadRejectsBadExtensionBeforeWriting(t *testing.T) {
	mediaDir := filepath.Join(t.TempDir(), "media")
	t.Setenv("MEDIA_FOLDER", mediaDir)

	svc := UploadService{}
	_, err := svc.Save("payload.exe", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrBadExtension)

	// Nothing was written, the media folder was never even created.
	_, statErr := os.Stat(mediaDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUploadExtensionFromFinalSegment(t *testing.T) {
	mediaDir := filepath.Join(t.TempDir(), "media")
	t.Setenv("MEDIA_FOLDER", mediaDir)

	svc := UploadService{}
	_, err := svc.Save("../../etc/passwd.png/../evil.sh", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrBadExtension)
}

func TestUploadOversizeLeavesNoPartialFile(t *testing.T) {
	mediaDir := filepath.Join(t.TempDir(), "media")
	t.Setenv("MEDIA_FOLDER", mediaDir)
	t.Setenv("MAX_UPLOAD_BYTES", "16")

	svc := UploadService{}
	_, err := svc.Save("big.png", bytes.NewReader(make([]byte, 64)))
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, readErr := os.ReadDir(mediaDir)
	assert.NoError(t, readErr)
	assert.Len(t, entries, 0)
}

func TestUploadStoresUnderRandomName(t *testing.T) {
	mediaDir := filepath.Join(t.TempDir(), "media")
	t.Setenv("MEDIA_FOLDER", mediaDir)
	t.Setenv("BACKEND_URL", "https://example.org")

	svc := UploadService{}
	url, err := svc.Save("My Photo.JPG", strings.NewReader("jpeg bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://example.org/media/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
	assert.NotContains(t, url, "My Photo")

	entries, readErr := os.ReadDir(mediaDir)
	assert.NoError(t, readErr)
	assert.Len(t, entries, 1)

	data, readFileErr := os.ReadFile(filepath.Join(mediaDir, entries[0].Name()))
	assert.NoError(t, readFileErr)
	assert.Equal(t, "jpeg bytes", string(data))
}
