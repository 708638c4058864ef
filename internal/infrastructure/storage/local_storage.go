// Package storage persists generated image files on the local filesystem.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eappleew/Chat-Cheappt/internal/config"
)

// LocalStorage writes image files under a base directory. Keys are
// slash-separated relative paths; the HTTP layer serves the same directory
// as static content.
type LocalStorage struct {
	basePath string
	log      zerolog.Logger
}

// NewLocalStorage creates a local filesystem storage backend rooted at the
// configured image path.
func NewLocalStorage(cfg *config.Config, log zerolog.Logger) (*LocalStorage, error) {
	logger := log.With().Str("component", "local-storage").Logger()

	basePath := strings.TrimSpace(cfg.ImageStoragePath)
	if basePath == "" {
		return nil, fmt.Errorf("IMAGE_STORAGE_PATH must not be empty")
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image storage directory: %w", err)
	}

	logger.Info().Str("path", basePath).Msg("local storage initialized")

	return &LocalStorage{
		basePath: basePath,
		log:      logger,
	}, nil
}

// Save writes the given bytes under key and returns the path of the file
// relative to the storage root.
func (l *LocalStorage) Save(ctx context.Context, key string, data []byte) (string, error) {
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	l.log.Debug().
		Str("key", key).
		Int64("bytes", written).
		Msg("file written to local storage")

	return key, nil
}

// Delete removes a stored file. Missing files are not an error.
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
