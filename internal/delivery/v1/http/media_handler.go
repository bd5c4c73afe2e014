package http

import (
	"net/http"

	"github.com/pixelmart-dev/go-backend/internal/usecase"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"github.com/pixelmart-dev/go-backend/pkg/logger"
)

// MediaHandler принимает изображения товаров через multipart/form-data
// и отдаёт публичные URL загруженных файлов.
type MediaHandler struct {
	mediaUsecase      usecase.MediaUC
	uploadImagesLimit int
	logger            logger.Logger
}

func NewMediaHandler(mediaUsecase usecase.MediaUC, uploadImagesLimit int, logger logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUsecase:      mediaUsecase,
		uploadImagesLimit: uploadImagesLimit,
		logger:            logger,
	}
}

func (m *MediaHandler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		m.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	// name задаёт префикс ключей объектов, обычно это slug товара.
	name := r.FormValue("name")
	if name == "" {
		m.logger.Warnf("%d %s: empty name field", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, e.ErrMissingFields)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"], m.uploadImagesLimit)
	if err != nil {
		m.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := m.mediaUsecase.UploadMedia(r.Context(), usecase.NewUploadImagesReq(name, images))
	if err != nil {
		m.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	media := make([]mediaResponse, 0, len(res.Media))
	for _, item := range res.Media {
		media = append(media, mediaResponse{
			Width:  item.Width,
			Height: item.Height,
			URL:    item.URL,
		})
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"media": media,
	})
}

type mediaResponse struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}
