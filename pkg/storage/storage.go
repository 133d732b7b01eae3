// Package storage persists uploaded media and returns the reference clients
// use to fetch it back.
package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"regexp"
	"time"

	"socialhub/pkg/config"
)

type Storage interface {
	// Save stores r under name and returns the public reference.
	Save(ctx context.Context, name string, r io.Reader, contentType string) (string, error)
}

var whitespace = regexp.MustCompile(`\s+`)

// GenerateName returns "<unix millis>-<random>-<filename>" with runs of
// whitespace in filename collapsed to '-'.
func GenerateName(filename string, now time.Time) string {
	base := filepath.Base(filepath.Clean("/" + filename))
	base = whitespace.ReplaceAllString(base, "-")
	return fmt.Sprintf("%d-%d-%s", now.UnixMilli(), rand.Int63n(1e9), base)
}

// New picks the backend named by cfg.MediaStorage.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.MediaStorage {
	case "", "local":
		return NewLocal(cfg.UploadDir, "/uploads")
	case "s3":
		return NewS3(cfg)
	default:
		return nil, fmt.Errorf("unknown media storage %q", cfg.MediaStorage)
	}
}
