package usecase

import "context"

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

// EventProducer публикует события мутаций каталога во внешний брокер.
type EventProducer interface {
	Publish(ctx context.Context, event *CatalogEvent) error
}
