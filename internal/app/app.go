// Package app assembles the sync core from configuration and runs it.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"newsreader/internal/api"
	"newsreader/internal/config"
	"newsreader/internal/connectivity"
	"newsreader/internal/credentials"
	"newsreader/internal/domain"
	"newsreader/internal/logger"
	"newsreader/internal/publisher"
	"newsreader/internal/scheduler"
	"newsreader/internal/service"
	"newsreader/internal/session"
	"newsreader/internal/source/remote"
	"newsreader/internal/storage/badger"
	"newsreader/internal/storage/sqlstore"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg    *config.Config
	logger *logger.Logger

	cache       service.ArticleCache
	source      *remote.Source
	refresh     *service.RefreshService
	comments    *service.CommentService
	coordinator *service.DownloadCoordinator
	home        *service.HomeModel
	monitor     *connectivity.Monitor
	session     *session.Controller
	scheduler   *scheduler.Scheduler
	server      *http.Server

	closers []func() error
}

// stores is the opened cache backend.
type stores struct {
	articles service.ArticleCache
	comments service.CommentCache
	state    service.RefreshStateStore
	health   api.HealthFunc
}

// New builds every component. On error whatever was already opened is closed.
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	return newApp(cfg, connectivity.NewNetProber(cfg.Connectivity.ProbeURL, cfg.Connectivity.ProbeTimeout), log)
}

func newApp(cfg *config.Config, prober connectivity.Prober, log *logger.Logger) (_ *App, err error) {
	a := &App{cfg: cfg, logger: log.WithComponent("app")}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	st, err := a.openStorage()
	if err != nil {
		return nil, err
	}
	cache := st.articles
	a.cache = cache

	tokens, err := a.openCredentials()
	if err != nil {
		return nil, err
	}

	notifier, err := a.openNotifier()
	if err != nil {
		return nil, err
	}

	a.source = remote.New(remote.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, tokens, log)

	a.refresh = service.NewRefreshService(a.source, cache, st.state, log)
	a.comments = service.NewCommentService(a.source, st.comments, log)

	a.coordinator = service.NewDownloadCoordinator(cache, notifier, cfg.Download, log)
	a.closers = append(a.closers, a.coordinator.Close)

	a.home = service.NewHomeModel(cache, a.refresh, a.coordinator, log)
	a.closers = append(a.closers, func() error {
		a.home.Close()
		return nil
	})

	a.monitor = connectivity.NewMonitor(prober, cfg.Connectivity, log)
	a.closers = append(a.closers, func() error {
		a.monitor.Stop()
		return nil
	})

	a.session = session.NewController(session.NavigatorFunc(a.navigate), a.monitor, tokens, cache, log)

	if cfg.Sync.Interval > 0 {
		a.scheduler = scheduler.NewScheduler(a.refresh, cfg.Sync.Interval, a.monitor.IsOnline, log)
	}

	handler := api.NewHandler(
		a.session,
		a.home,
		a.coordinator,
		a.refresh,
		a.source,
		a.comments,
		a.monitor,
		st.health,
		log,
	)
	a.server = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(handler, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return a, nil
}

func (a *App) openStorage() (*stores, error) {
	switch a.cfg.Storage.Driver {
	case "badger":
		db, err := badger.New(a.cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		a.logger.Info("opened article cache", "driver", "badger", "path", a.cfg.Storage.Path)
		return &stores{
			articles: badger.NewArticleCache(db),
			comments: badger.NewCommentCache(db),
			state:    badger.NewRefreshStateStore(db),
			health:   db.HealthCheck,
		}, nil

	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
		dsn := a.cfg.Storage.Path
		if a.cfg.Storage.Driver == sqlstore.DriverPostgres {
			dsn = a.cfg.Storage.Database.DSN()
		}
		db, err := sqlstore.Open(a.cfg.Storage.Driver, dsn)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		a.logger.Info("opened article cache", "driver", a.cfg.Storage.Driver)
		tx := sqlstore.NewTransactionManager(db)
		return &stores{
			articles: sqlstore.NewArticleCache(db, tx),
			comments: sqlstore.NewCommentCache(db, tx),
			state:    sqlstore.NewRefreshStateStore(db),
			health: func(ctx context.Context) error {
				return sqlstore.HealthCheck(ctx, db)
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) openCredentials() (service.CredentialStore, error) {
	switch a.cfg.Credentials.Backend {
	case "file":
		return credentials.NewFileStore(a.cfg.Credentials.Path), nil
	case "redis":
		store, err := credentials.NewRedisStore(a.cfg.Credentials.RedisURL, a.cfg.Credentials.Key)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", a.cfg.Credentials.Backend)
	}
}

func (a *App) openNotifier() (service.ProgressNotifier, error) {
	notifiers := []service.ProgressNotifier{publisher.NewLogNotifier(a.logger)}

	if a.cfg.RabbitMQ.Enabled {
		rabbit, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        a.cfg.RabbitMQ.URL,
			Exchange:   a.cfg.RabbitMQ.Exchange,
			RoutingKey: a.cfg.RabbitMQ.RoutingKey,
			QueueName:  a.cfg.RabbitMQ.QueueName,
		}, a.logger)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, rabbit)
	}

	multi := publisher.NewMulti(notifiers...)
	a.closers = append(a.closers, multi.Close)
	return multi, nil
}

func (a *App) navigate(route domain.Route) {
	a.logger.Info("navigate", "route", string(route))
}

// Run checks connectivity, starts the session and serves the control API
// until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	online := a.monitor.CheckNow(ctx)
	route := a.session.Start(ctx, online)
	a.logger.Info("starting newsreader",
		"source", a.source.Name(),
		"online", online,
		"route", string(route),
		"addr", a.cfg.HTTP.Addr,
	)

	if err := a.monitor.Start(ctx, a.cfg.Connectivity.PollInterval, a.session.OnConnectivityChanged); err != nil {
		return fmt.Errorf("start connectivity monitor: %w", err)
	}

	if a.scheduler != nil {
		go func() {
			if err := a.scheduler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("scheduler error", "error", err)
			}
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}

// Close releases components in reverse order of creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
