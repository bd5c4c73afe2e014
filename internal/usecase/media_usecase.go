package usecase

import (
	"context"
	"strings"

	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"github.com/pixelmart-dev/go-backend/pkg/logger"
)

// MediaUseCase загружает изображения каталога в объектное хранилище и
// возвращает их публичные URL для подстановки в медиа-поля товаров.
type MediaUseCase struct {
	imagesInfra ImagesInfra
	baseURL     string
	bucket      string
	logger      logger.Logger
}

func NewMediaUC(imagesInfra ImagesInfra, baseURL, bucket string, logger logger.Logger) *MediaUseCase {
	return &MediaUseCase{
		imagesInfra: imagesInfra,
		baseURL:     strings.TrimRight(baseURL, "/"),
		bucket:      bucket,
		logger:      logger,
	}
}

func (m *MediaUseCase) UploadMedia(ctx context.Context, req *UploadImagesReq) (*UploadMediaRes, error) {
	const op = "MediaUseCase.UploadMedia"

	if len(req.Images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	res, err := m.imagesInfra.UploadImages(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	media := make([]domain.Media, 0, len(res.ImagesKeys))
	for _, key := range res.ImagesKeys {
		media = append(media, domain.Media{
			URL: m.baseURL + "/" + m.bucket + "/" + key,
		})
	}

	return &UploadMediaRes{Media: media}, nil
}
