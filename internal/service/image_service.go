package service

import (
	"context"
	"fmt"
	"io"

	"miblog/internal/storage"
)

type ImageService interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type imageService struct {
	storage storage.Storage
}

func NewImageService(storage storage.Storage) ImageService {
	return &imageService{storage: storage}
}

// UploadImage кладёт картинку в MinIO и возвращает публичный URL,
// который клиент дальше передаёт как imageUrl блога или поста.
func (s *imageService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	imageURL, err := s.storage.UploadImage(ctx, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	return imageURL, nil
}
