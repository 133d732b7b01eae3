package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

type Local struct {
	dir       string
	urlPrefix string
}

func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Local{dir: dir, urlPrefix: urlPrefix}, nil
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Save(ctx context.Context, name string, r io.Reader, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(l.dir, filepath.Base(name)))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(l.urlPrefix, filepath.Base(name)), nil
}
