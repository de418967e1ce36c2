package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront-backend/internal/delivery/v1/http"
	authInfra "github.com/DRSN-tech/storefront-backend/internal/infrastructure/auth"
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure/email"
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront-backend/internal/infrastructure/minio"
	"github.com/DRSN-tech/storefront-backend/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/storefront-backend/internal/repository/minio"
	redisRepo "github.com/DRSN-tech/storefront-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/closer"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// App собирает зависимости и управляет жизненным циклом сервиса.
type App struct {
	cfg         *config.Config
	logger      logger.Logger
	httpSrv     *v1Http.Server
	imagesInfra *minioInfra.MinioInfrastructure
	closer      *closer.Closer
	cancelInfra context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	// Контекст фоновых задач инфраструктуры, живет до конца shutdown
	infraCtx, cancelInfra := context.WithCancel(context.Background())

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		cancelInfra()
		return nil, err
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		cancelInfra()
		return nil, err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		cancelInfra()
		return nil, err
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, infraCtx)

	catalogRepo := memory.NewCatalogRepo(memory.DefaultCatalog())
	userRepo := memory.NewUserRepo()
	orderRepo := memory.NewOrderRepo()
	tryOnRepo := memory.NewTryOnRepo()

	cartRepo := redisRepo.NewCartRepo(redisClient, redisConv.NewCartConverter(), cfg.Redis, log)
	wishlistRepo := redisRepo.NewWishlistRepo(redisClient, log)
	tokenRepo := redisRepo.NewTokenRepo(redisClient, log)

	var producer usecase.EventProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err := kafka.NewProducer(log, cfg.Kafka)
		if err != nil {
			cancelInfra()
			return nil, err
		}
		if err := kafkaProducer.EnsureTopic(10 * time.Second); err != nil {
			log.Warnf("kafka topic check failed, continuing anyway: %v", err)
		}
		producer = kafkaProducer
	} else {
		log.Infof("KAFKA_BROKERS not set, order events disabled")
		producer = kafka.NewNoopProducer(log)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	var mailer usecase.Mailer
	if cfg.Email.Enabled {
		mailer = email.NewSendGridMailer(cfg.Email, log)
	} else {
		log.Infof("SENDGRID_API_KEY not set, outgoing mail disabled")
		mailer = email.NewNoopMailer(log)
	}

	tokens := authInfra.NewJWTManager(cfg.Auth)

	catalogUC := usecase.NewCatalogUC(catalogRepo, imagesInfra, log)
	cartUC := usecase.NewCartUC(cartRepo, catalogRepo, log)
	checkoutUC := usecase.NewCheckoutUC(cartRepo, catalogRepo, orderRepo, userRepo, producer, mailer, log)
	authUC := usecase.NewAuthUC(userRepo, tokenRepo, tokens, mailer, cfg.Redis.ResetTokenTTL, cfg.Auth.BcryptCost, log)
	tryOnUC := usecase.NewTryOnUC(tryOnRepo, catalogRepo, log)
	wishlistUC := usecase.NewWishlistUC(wishlistRepo, catalogRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(v1Http.UseCases{
		Catalog:  catalogUC,
		Cart:     cartUC,
		Checkout: checkoutUC,
		Auth:     authUC,
		TryOn:    tryOnUC,
		Wishlist: wishlistUC,
		Tokens:   tokens,
	})

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:         cfg,
		logger:      log,
		httpSrv:     httpSrv,
		imagesInfra: imagesInfra,
		closer:      cl,
		cancelInfra: cancelInfra,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или фатальной ошибки.
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
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.imagesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}
	a.cancelInfra()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("close error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
}
