package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/dropflow/internal/cfg"
	v1Http "github.com/DRSN-tech/dropflow/internal/delivery/v1/http"
	"github.com/DRSN-tech/dropflow/internal/repository/memory"
	"github.com/DRSN-tech/dropflow/internal/repository/pgdb"
	"github.com/DRSN-tech/dropflow/internal/repository/redis"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/clients"
	"github.com/DRSN-tech/dropflow/pkg/closer"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/jitter"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/DRSN-tech/dropflow/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const maxReadyDelay = 5 * time.Second

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	catalog *usecase.CatalogUseCase
	server  *v1Http.Server
}

// NewApp поднимает хранилище, загружает коллекции и собирает HTTP-сервер.
// Уже открытые ресурсы закрываются, если инициализация не удалась.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0, log),
	}

	if err := a.init(); err != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()
		if closeErr := a.closer.Close(ctx); closeErr != nil {
			log.Errorf(closeErr, "failed to release resources after init error")
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init() error {
	ctx := context.Background()

	persistence, err := a.initPersistence(ctx)
	if err != nil {
		return err
	}

	a.catalog = usecase.NewCatalogUC(persistence, a.logger)
	if err := a.catalog.Load(ctx); err != nil {
		a.logger.Errorf(err, "failed to load collections")
		return err
	}

	dashboard := usecase.NewDashboardUC(a.catalog)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.logger)
	router.Init(a.catalog, dashboard)

	a.server = v1Http.NewServer(router.Handler(), a.cfg.Http)
	a.closer.Add("http", a.server.Stop)

	return nil
}

// initPersistence выбирает хранилище по STORAGE_DRIVER и дожидается его готовности.
func (a *App) initPersistence(ctx context.Context) (usecase.Persistence, error) {
	backoff := jitter.Backoff{
		Base:   a.cfg.Storage.ReadyBaseDelay,
		Max:    maxReadyDelay,
		Factor: jitter.DefaultFactor,
	}

	switch a.cfg.Storage.Driver {
	case config.DriverRedis:
		client := clients.NewRedisClient(a.cfg.Redis)
		a.closer.Add("redis", client.Close)

		if err := jitter.Retry(ctx, a.cfg.Storage.ReadyAttempts, backoff, client.Ping); err != nil {
			a.logger.Errorf(err, "redis is not ready at %s", a.cfg.Redis.Addr)
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.logger.Infof("Using redis storage at %s", a.cfg.Redis.Addr)

		return redis.NewStore(client, a.cfg.Redis, a.logger), nil

	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, a.cfg.Db)
		if err != nil {
			a.logger.Errorf(err, "failed to connect to database")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("postgres", db.Close)

		if err := jitter.Retry(ctx, a.cfg.Storage.ReadyAttempts, backoff, db.Ping); err != nil {
			a.logger.Errorf(err, "failed to ping database")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if err := db.RunMigrations(a.logger); err != nil {
			a.logger.Errorf(err, "failed to run migrations")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.logger.Infof("Using postgres storage at %s:%s", a.cfg.Db.Host, a.cfg.Db.Port)

		return pgdb.NewStore(db.Pool, a.logger), nil

	default:
		a.logger.Warnf("Using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil
	}
}

// Run блокируется до сигнала остановки или падения HTTP-сервера, затем закрывает ресурсы.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.server.Run(); err != nil {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("Received %s, stopping gracefully...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Http.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")

	return appErr
}
