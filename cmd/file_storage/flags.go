package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/file_storage/internal/app"
	"github.com/kurochkinivan/file_storage/internal/config"
	"github.com/kurochkinivan/file_storage/internal/files"
	"github.com/kurochkinivan/file_storage/internal/progress"
	"github.com/kurochkinivan/file_storage/internal/upload"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "file_storage",
		Usage:   "File storage service with upload progress tracking",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var configFile string

	src := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&configFile)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.Int64Flag{
			Name:      "max-upload-size",
			Usage:     "Set maximum upload size in bytes",
			Value:     upload.DefaultMaxFileSize,
			Sources:   src("app.max_upload_size"),
			Validator: validatePositive[int64],
		},
		&cli.DurationFlag{
			Name:    "download-url-ttl",
			Usage:   "Set lifetime of presigned download URLs",
			Value:   files.DefaultDownloadURLTTL,
			Sources: src("app.download_url_ttl"),
		},
		&cli.DurationFlag{
			Name:    "progress-retention",
			Usage:   "Set how long upload progress records are kept after their last update",
			Value:   progress.DefaultRetention,
			Sources: src("app.progress_retention"),
		},
		&cli.DurationFlag{
			Name:    "sweep-interval",
			Usage:   "Set interval between stale progress record sweeps",
			Value:   progress.DefaultSweepInterval,
			Sources: src("app.sweep_interval"),
		},
		&cli.StringFlag{
			Name:      "storage-driver",
			Usage:     "Set object storage driver: s3 or gcs",
			Value:     config.StorageDriverS3,
			Sources:   src("storage.driver"),
			Validator: validateStorageDriver,
		},
		&cli.StringFlag{
			Name:    "s3-bucket",
			Usage:   "Set S3 bucket name",
			Sources: src("storage.s3.bucket"),
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "Set S3 region",
			Value:   "us-east-1",
			Sources: src("storage.s3.region"),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "Set custom S3 endpoint, e.g. for MinIO",
			Sources: src("storage.s3.endpoint"),
		},
		&cli.StringFlag{
			Name:    "s3-access-key-id",
			Usage:   "Set S3 access key id, the default credential chain is used when empty",
			Sources: src("storage.s3.access_key_id"),
		},
		&cli.StringFlag{
			Name:    "s3-secret-access-key",
			Usage:   "Set S3 secret access key",
			Sources: src("storage.s3.secret_access_key"),
		},
		&cli.BoolFlag{
			Name:    "s3-use-path-style",
			Usage:   "Use path-style S3 addressing",
			Sources: src("storage.s3.use_path_style"),
		},
		&cli.StringFlag{
			Name:    "gcs-bucket",
			Usage:   "Set GCS bucket name",
			Sources: src("storage.gcs.bucket"),
		},
		&cli.StringFlag{
			Name:    "gcs-credentials-file",
			Usage:   "Load GCS service account credentials from `FILE`",
			Sources: src("storage.gcs.credentials_file"),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  src("postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  src("postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  src("postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  src("postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "file_storage",
			Sources:  src("postgresql.dbname"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: src("postgresql.sslmode"),
		},
		&cli.Int32Flag{
			Name:      "pg-max-conns",
			Usage:     "Set PostgreSQL pool size",
			Value:     10,
			Sources:   src("postgresql.max_conns"),
			Validator: validatePositive[int32],
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: src("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: src("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: src("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: src("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   1 * time.Minute,
			Sources: src("http.write_timeout"),
		},
		&cli.StringSliceFlag{
			Name:    "http-allowed-origins",
			Usage:   "Set origins allowed to call the API",
			Value:   []string{"http://localhost:3000"},
			Sources: src("http.allowed_origins"),
		},
		&cli.IntFlag{
			Name:    "http-rate-limit",
			Usage:   "Set requests allowed per client IP within the window, 0 disables limiting",
			Value:   100,
			Sources: src("http.rate_limit"),
		},
		&cli.DurationFlag{
			Name:    "http-rate-limit-window",
			Usage:   "Set rate limit window",
			Value:   15 * time.Minute,
			Sources: src("http.rate_limit_window"),
		},
	}
}

func validateConfig(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", path)
	}

	return nil
}

func validateStorageDriver(driver string) error {
	switch driver {
	case config.StorageDriverS3, config.StorageDriverGCS:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q, expected %q or %q", driver, config.StorageDriverS3, config.StorageDriverGCS)
	}
}

func validatePositive[T int32 | int64](v T) error {
	if v <= 0 {
		return fmt.Errorf("must be positive, got %d", v)
	}
	return nil
}
