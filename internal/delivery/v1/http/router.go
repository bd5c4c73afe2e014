package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
	"github.com/pixelmart-dev/go-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init монтирует GraphQL-обработчик, загрузку медиа и health-пробу.
func (r *Router) Init(graphqlHandler http.Handler, mediaUC usecase.MediaUC, uploadImagesLimit int) {
	r.router.Handle("/graphql", graphqlHandler)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		mediaHandler := NewMediaHandler(mediaUC, uploadImagesLimit, r.logger)
		registerMediaRoutes(v1, mediaHandler)
	})

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{"status": "ok"})
	})
}

func registerMediaRoutes(router chi.Router, mediaHandler *MediaHandler) {
	router.Route("/media", func(media chi.Router) {
		media.Post("/", mediaHandler.uploadMedia)
	})
}
