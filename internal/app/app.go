package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/file_storage/internal/config"
	v1 "github.com/kurochkinivan/file_storage/internal/controller/http/v1"
	"github.com/kurochkinivan/file_storage/internal/files"
	"github.com/kurochkinivan/file_storage/internal/progress"
	"github.com/kurochkinivan/file_storage/internal/repository/postgresql"
	"github.com/kurochkinivan/file_storage/internal/storage"
	"github.com/kurochkinivan/file_storage/internal/upload"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("storage_driver", a.cfg.Storage.Driver),
		slog.Int64("max_upload_size", a.cfg.App.MaxUploadSize),
		slog.Duration("progress_retention", a.cfg.App.ProgressRetention),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	backend, err := storage.Open(ctx, a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open object storage: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			a.log.ErrorContext(ctx, "failed to close object storage", slog.String("err", err.Error()))
		}
	}()

	a.log.InfoContext(ctx, "object storage ready", slog.String("bucket", backend.Bucket()))

	filesRepository := postgresql.NewFilesRepository(pool)
	txManager := postgresql.NewTxManager(pool)
	progressStore := progress.NewStore()
	validator := upload.NewValidator(a.cfg.App.MaxUploadSize)

	uploader := upload.NewController(
		a.log.With(slog.String("component", "upload")),
		progressStore,
		backend,
		filesRepository,
		validator,
	)

	filesService := files.NewService(
		a.log.With(slog.String("component", "files")),
		filesRepository,
		backend,
		txManager,
		a.cfg.App.DownloadURLTTL,
	)

	sweeper := progress.NewSweeper(
		a.log.With(slog.String("component", "sweeper")),
		progressStore,
		a.cfg.App.SweepInterval,
		a.cfg.App.ProgressRetention,
	)

	server := v1.NewServer(a.log, a.cfg.HTTP, v1.Dependencies{
		Uploader:      uploader,
		Progress:      progressStore,
		Files:         filesService,
		Pinger:        pool,
		MaxUploadSize: validator.MaxSize(),
	})

	return a.serve(ctx, sweeper, server)
}

func (a *App) serve(ctx context.Context, sweeper *progress.Sweeper, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "sweeper started")
		return sweeper.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
