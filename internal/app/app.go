package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/foodie-cart/internal/cfg"
	v1Http "github.com/DRSN-tech/foodie-cart/internal/delivery/v1/http"
	"github.com/DRSN-tech/foodie-cart/internal/infrastructure/kafka"
	"github.com/DRSN-tech/foodie-cart/internal/repository/kvstore"
	"github.com/DRSN-tech/foodie-cart/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/foodie-cart/internal/repository/minio"
	"github.com/DRSN-tech/foodie-cart/internal/repository/pgdb"
	"github.com/DRSN-tech/foodie-cart/internal/repository/redis"
	sqliteRepo "github.com/DRSN-tech/foodie-cart/internal/repository/sqlite"
	"github.com/DRSN-tech/foodie-cart/internal/repository/static"
	"github.com/DRSN-tech/foodie-cart/internal/usecase"
	"github.com/DRSN-tech/foodie-cart/pkg/clients"
	"github.com/DRSN-tech/foodie-cart/pkg/closer"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
	"github.com/DRSN-tech/foodie-cart/pkg/postgres"
	"github.com/DRSN-tech/foodie-cart/pkg/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const shutdownTimeout = 10 * time.Second

// App собирает зависимости: хранилище, необязательные интеграции и use case'ы.
// Используется и HTTP-сервером, и CLI.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	Cart    *usecase.CartUseCase
	Orders  *usecase.OrderUseCase
	Catalog *usecase.CatalogUseCase
	Contact *usecase.ContactUseCase
}

func NewApp(ctx context.Context, cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(),
	}

	backend, err := a.initBackend(ctx)
	if err != nil {
		a.closeQuietly()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	store := kvstore.NewStore(backend, cfg.Store.Namespace, logger)

	var publisher usecase.OrderPublisher
	if cfg.Kafka != nil {
		producer := kafka.NewProducer(cfg.Kafka, logger)
		a.closer.Add("kafka producer", producer.Close)
		publisher = producer
		logger.Infof("order events enabled, topic=%s", cfg.Kafka.Topic)
	}

	var receipts usecase.ReceiptArchive
	if cfg.Minio != nil {
		receipts, err = a.initReceipts(ctx)
		if err != nil {
			a.closeQuietly()
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		logger.Infof("receipt archive enabled, bucket=%s", cfg.Minio.BucketName)
	}

	catalog := static.NewDefaultCatalogRepo()
	a.Catalog = usecase.NewCatalogUC(catalog)
	a.Cart = usecase.NewCartUC(ctx, catalog, store, logger)
	a.Cart.Subscribe(func(s usecase.Snapshot) {
		logger.Debugf("cart changed: items=%d total=%s", s.ItemCount, s.TotalString())
	})
	a.Orders = usecase.NewOrderUC(a.Cart, store, publisher, receipts, logger)
	a.Contact = usecase.NewContactUC(store, logger)

	return a, nil
}

// initBackend выбирает key/value бэкенд по STORE_DRIVER.
func (a *App) initBackend(ctx context.Context) (kvstore.Backend, error) {
	switch a.cfg.Store.Driver {
	case config.StoreDriverMemory:
		a.logger.Warnf("memory store selected, state is lost on exit")
		return memory.NewKVRepo(), nil

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(a.cfg.Store.SQLitePath)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("sqlite", func(context.Context) error { return db.Close() })
		return sqliteRepo.NewKVRepo(db.DB), nil

	case config.StoreDriverRedis:
		client := clients.NewRedisClient(a.cfg.Redis)
		a.closer.Add("redis", client.Close)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		return redis.NewKVRepo(client), nil

	case config.StoreDriverPostgres:
		db, err := initPGDB(ctx, a.logger, a.cfg)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("postgres", db.Close)
		return pgdb.NewKVRepo(db.Pool), nil

	default:
		return nil, e.Wrap(a.cfg.Store.Driver, e.ErrUnknownStoreDriver)
	}
}

func (a *App) initReceipts(ctx context.Context) (*s3Repo.ReceiptRepo, error) {
	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, a.cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s3Repo.NewReceiptRepo(minioClient, a.cfg.Minio.BucketName), nil
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(postgres.DefaultMigrationsURL, logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		_ = db.Close(ctx)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

// Handler возвращает HTTP API поверх use case'ов приложения.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.logger)
	router.Init(a.Cart, a.Orders, a.Catalog, a.Contact)

	return r
}

// Serve запускает HTTP-сервер и блокируется до сигнала, отмены ctx или ошибки сервера.
func (a *App) Serve(ctx context.Context) error {
	httpSrv := v1Http.NewServer(a.Handler(), a.cfg.Http)
	if err := httpSrv.Listen(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on %s", httpSrv.Addr())
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-ctx.Done():
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if appErr != nil {
		return e.Wrap(whereami.WhereAmI(), appErr)
	}

	return nil
}

// Close освобождает ресурсы в обратном порядке открытия.
func (a *App) Close(ctx context.Context) error {
	if err := a.closer.Close(ctx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
		return err
	}

	return nil
}

func (a *App) closeQuietly() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	_ = a.closer.Close(ctx)
}
