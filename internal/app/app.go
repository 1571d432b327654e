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
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/storefront-backend/internal/pricing"
	s3Repo "github.com/DRSN-tech/storefront-backend/internal/repository/minio"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/closer"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/DRSN-tech/storefront-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout   = 10 * time.Second
	ensureTimeout     = 10 * time.Second
	kafkaSetupTimeout = 15 * time.Second
)

// App связывает слои приложения: хранилища, движки каталога и
// ценообразования, HTTP-доставку и воркер outbox.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("postgres pool closed")
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	catConv := pgdbConv.NewCategoryConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	cartConv := redisConv.NewCartConverterImpl()

	catalogRepo := pgdb.NewCatalogRepo(db.Pool, prConv, catConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), ensureTimeout)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		if err := redisClient.Client.Close(); err != nil {
			return err
		}
		log.Infof("redis client closed")
		return nil
	})

	cartRepo := redis.NewCartRepo(redisClient, cartConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(kafkaSetupTimeout); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		if err := producer.Close(); err != nil {
			return err
		}
		log.Infof("kafka producer closed")
		return nil
	})

	catalogUC := usecase.NewCatalogUC(catalogRepo, imageRepo, log)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), ensureTimeout)
	defer loadCancel()
	if err := catalogUC.Load(loadCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cartUC := usecase.NewCartUC(cartRepo, catalogUC, imageRepo, pricing.DefaultCoupons(), log)
	checkoutUC := usecase.NewCheckoutUC(cartRepo, orderRepo, outboxRepo, db.Pool, log)

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	cl.Add(func(ctx context.Context) error {
		worker.Stop()
		log.Infof("outbox worker stopped")
		return nil
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, checkoutUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		if err := httpSrv.Stop(ctx); err != nil {
			return err
		}
		log.Infof("HTTP server stopped")
		return nil
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		worker:  worker,
		closer:  cl,
	}, nil
}

// Run запускает воркер outbox и HTTP-сервер и блокируется до сигнала
// завершения либо фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
