package service

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"devfolio/config"
	"devfolio/logger"
	"devfolio/util/common"

	"github.com/google/uuid"
)

var (
	ErrNoFilename   = errors.New("filename is required")
	ErrBadExtension = errors.New("unsupported file type")
	ErrTooLarge     = errors.New("file too large")
)

const uploadChunkSize = 1024 * 1024

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

type UploadService struct{}

// Save validates and stores an uploaded file under a random name,
// preserving only the extension, and returns the absolute media URL.
// Bytes are copied in bounded chunks; exceeding the size limit removes
// the partial file.
func (s *UploadService) Save(filename string, src io.Reader) (string, error) {
	if filename == "" {
		return "", ErrNoFilename
	}

	// Only the final path segment counts, so traversal in the client
	// provided name has no effect.
	base := filename[strings.LastIndexAny(filename, `/\`)+1:]
	ext := strings.ToLower(filepath.Ext(base))
	if !allowedUploadExtensions[ext] {
		return "", ErrBadExtension
	}

	mediaDir := config.GetMediaFolder()
	if err := os.MkdirAll(mediaDir, 0o750); err != nil {
		return "", err
	}

	storedName := uuid.New().String() + ext
	storedPath := filepath.Join(mediaDir, storedName)

	dst, err := os.OpenFile(storedPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o640)
	if err != nil {
		return "", err
	}

	maxBytes := config.GetMaxUploadBytes()
	var written int64
	buf := make([]byte, uploadChunkSize)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			written += int64(n)
			if written > maxBytes {
				dst.Close()
				os.Remove(storedPath)
				logger.Warningf("rejected upload over %s", common.FormatBytes(maxBytes))
				return "", ErrTooLarge
			}
			if _, err := dst.Write(buf[:n]); err != nil {
				dst.Close()
				os.Remove(storedPath)
				return "", err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			dst.Close()
			os.Remove(storedPath)
			return "", readErr
		}
	}

	if err := dst.Close(); err != nil {
		os.Remove(storedPath)
		return "", err
	}

	return config.GetBackendURL() + "/media/" + storedName, nil
}
