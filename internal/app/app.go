package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/pixelmart-dev/go-backend/internal/cfg"
	v1Graphql "github.com/pixelmart-dev/go-backend/internal/delivery/v1/graphql"
	v1Http "github.com/pixelmart-dev/go-backend/internal/delivery/v1/http"
	"github.com/pixelmart-dev/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/pixelmart-dev/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/pixelmart-dev/go-backend/internal/repository/minio"
	"github.com/pixelmart-dev/go-backend/internal/repository/mongodb"
	mongoConv "github.com/pixelmart-dev/go-backend/internal/repository/mongodb/converter"
	redisRepo "github.com/pixelmart-dev/go-backend/internal/repository/redis"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
	"github.com/pixelmart-dev/go-backend/pkg/clients"
	"github.com/pixelmart-dev/go-backend/pkg/closer"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"github.com/pixelmart-dev/go-backend/pkg/logger"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	cleanupWait     = 5 * time.Second
)

// App собирает все слои сервиса и управляет их жизненным циклом.
type App struct {
	cfg    *cfg.Config
	logger logger.Logger

	httpSrv     *v1Http.Server
	imagesInfra *minioInfra.MinioInfrastructure
	closer      *closer.Closer

	// infraCancel гасит фоновые задачи очистки в самом конце завершения.
	infraCancel context.CancelFunc
}

func NewApp(config *cfg.Config, log logger.Logger) (*App, error) {
	appCloser := closer.NewCloser(0)

	initCtx, initCancel := context.WithTimeout(context.Background(), initTimeout)
	defer initCancel()

	mongoClient, err := clients.NewMongoClient(initCtx, config.Mongo)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	appCloser.Add(mongoClient.Close)

	productConv := mongoConv.NewProductConverterImpl()
	categoryConv := mongoConv.NewCategoryConverterImpl()
	postConv := mongoConv.NewPostConverterImpl()

	productRepo := mongodb.NewProductRepo(mongoClient.DB, config.Mongo.ProductsCollection, productConv)
	categoryRepo := mongodb.NewCategoryRepo(mongoClient.DB, config.Mongo.CategoriesCollection, categoryConv)
	postRepo := mongodb.NewPostRepo(mongoClient.DB, config.Mongo.PostsCollection, postConv)

	redisClient := clients.NewRedisClient(config.Redis)
	if err := redisClient.Ping(initCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	appCloser.Add(func(context.Context) error {
		return redisClient.Client.Close()
	})

	seqRepo := redisRepo.NewSequenceRepo(redisClient)
	if err := seedSequences(initCtx, seqRepo, productRepo, categoryRepo); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioClient, err := clients.NewMinIOClient(config.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := clients.EnsureBucket(initCtx, minioClient, config.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, config.Minio)

	infraCtx, infraCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, config.Minio, log, infraCtx)

	producer, err := kafka.NewProducer(log, config.Kafka)
	if err != nil {
		infraCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(initTimeout); err != nil {
		infraCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	appCloser.Add(func(context.Context) error {
		return producer.Close()
	})

	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, log)
	blogUC := usecase.NewBlogUC(postRepo, categoryRepo, log)
	mutationUC := usecase.NewCatalogMutationUC(productRepo, categoryRepo, seqRepo, producer, log)
	mediaUC := usecase.NewMediaUC(imagesInfra, config.Minio.PublicBaseURL, config.Minio.BucketName, log)

	resolver := v1Graphql.NewResolver(catalogUC, blogUC, mutationUC, log)
	schema, err := v1Graphql.NewSchema(resolver)
	if err != nil {
		infraCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(v1Graphql.NewHandler(schema), mediaUC, config.Minio.UploadImagesLimit)

	httpSrv := v1Http.NewServer(r, config.Http)

	return &App{
		cfg:         config,
		logger:      log,
		httpSrv:     httpSrv,
		imagesInfra: imagesInfra,
		closer:      appCloser,
		infraCancel: infraCancel,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	a.stop()

	return appErr
}

func (a *App) stop() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	done := make(chan error, 1)
	go func() {
		done <- a.imagesInfra.WaitForCleanup(shutdownCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			a.logger.Warnf("MinIO cleanup error: %v", err)
		} else {
			a.logger.Infof("MinIO cleanup completed")
		}
	case <-time.After(cleanupWait):
		a.logger.Warnf("MinIO cleanup did not finish before shutdown, some temporary objects may remain")
	}
	a.infraCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource shutdown error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
}

// seedSequences поднимает счётчики идентификаторов до максимума по
// существующим документам, чтобы новые id не пересекались со старыми.
func seedSequences(ctx context.Context, seqRepo usecase.SequenceRepository, productRepo usecase.ProductRepository, categoryRepo usecase.CategoryRepository) error {
	products, err := productRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	var maxProductID int64
	for _, p := range products {
		if p.ID > maxProductID {
			maxProductID = p.ID
		}
	}
	if err := seqRepo.Ensure(ctx, usecase.SeqProducts, maxProductID); err != nil {
		return err
	}

	categories, err := categoryRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	var maxCategoryID int64
	for _, c := range categories {
		if c.ID > maxCategoryID {
			maxCategoryID = c.ID
		}
	}

	return seqRepo.Ensure(ctx, usecase.SeqCategories, maxCategoryID)
}
