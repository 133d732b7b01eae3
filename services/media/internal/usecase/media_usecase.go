package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"socialhub/pkg/logger"
	"socialhub/pkg/storage"

	"golang.org/x/sync/errgroup"
)

const MaxMediaFiles = 6

type MediaUseCase interface {
	// Upload stores each file and returns the references in input order.
	Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

type mediaUseCase struct {
	store  storage.Storage
	logger *logger.Logger
	now    func() time.Time
}

func NewMediaUseCase(store storage.Storage, logger *logger.Logger) MediaUseCase {
	return &mediaUseCase{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *mediaUseCase) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			path, err := uc.save(gctx, file)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func (uc *mediaUseCase) save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	name := storage.GenerateName(file.Filename, uc.now())
	path, err := uc.store.Save(ctx, name, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", file.Filename, err)
	}

	uc.logger.Info("Stored upload %s (%d bytes)", path, file.Size)
	return path, nil
}
