package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/file_storage/internal/config"
	"github.com/kurochkinivan/file_storage/internal/repository/postgresql"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationTypeUp   = "up"
	migrationTypeDown = "down"
)

const (
	exitCodeOK = iota
	exitCodeInputErr
	exitCodeInternalErr
)

type flags struct {
	migrationType string
	steps         int
	db            config.PostgreSQL
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	exitCode, err := Run(ctx, log, parseFlags(os.Args[1:]))
	if err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))
	}

	stop()
	os.Exit(exitCode)
}

func Run(ctx context.Context, log *slog.Logger, f *flags) (exitCode int, err error) {
	if err := f.validate(); err != nil {
		return exitCodeInputErr, fmt.Errorf("invalid flags: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, postgresql.ConnectionURL(f.db))
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			if err == nil {
				exitCode = exitCodeInternalErr
			}
			err = errors.Join(err, closeErr)
		}
	}()

	go func() {
		<-ctx.Done()
		migrator.GracefulStop <- true
	}()

	if err := applyMigration(migrator, f.migrationType, f.steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "no migrations to apply")
			return exitCodeOK, nil
		}

		return exitCodeInternalErr, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return exitCodeInternalErr, fmt.Errorf("failed to read schema version: %w", err)
	}

	log.InfoContext(ctx, "migrations applied successfully",
		slog.String("type", f.migrationType),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return exitCodeOK, nil
}

// applyMigration runs all pending migrations, or only the given number of
// steps when steps > 0.
func applyMigration(migrator *migrate.Migrate, migrationType string, steps int) error {
	switch migrationType {
	case migrationTypeUp:
		if steps > 0 {
			return migrator.Steps(steps)
		}
		return migrator.Up()
	case migrationTypeDown:
		if steps > 0 {
			return migrator.Steps(-steps)
		}
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration type %q", migrationType)
	}
}

func parseFlags(args []string) *flags {
	f := &flags{}

	fs := flag.NewFlagSet("migrator", flag.ExitOnError)
	fs.StringVar(&f.migrationType, "type", migrationTypeUp, "migration type: up/down")
	fs.IntVar(&f.steps, "steps", 0, "number of migrations to apply, 0 means all")
	fs.StringVar(&f.db.Username, "username", "", "database username")
	fs.StringVar(&f.db.Password, "password", "", "database password")
	fs.StringVar(&f.db.Host, "host", "127.0.0.1", "database host")
	fs.StringVar(&f.db.Port, "port", "5432", "database port")
	fs.StringVar(&f.db.DBName, "db", "", "database name")
	fs.StringVar(&f.db.SSLMode, "sslmode", "disable", "database sslmode")
	_ = fs.Parse(args)

	return f
}

func (f *flags) validate() error {
	if f.migrationType != migrationTypeUp && f.migrationType != migrationTypeDown {
		return fmt.Errorf("type must be %q or %q, got %q", migrationTypeUp, migrationTypeDown, f.migrationType)
	}

	if f.steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", f.steps)
	}

	for _, req := range []struct{ name, value string }{
		{"username", f.db.Username},
		{"password", f.db.Password},
		{"db", f.db.DBName},
		{"port", f.db.Port},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}

	return nil
}
