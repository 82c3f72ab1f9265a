package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorageDriverS3  = "s3"
	StorageDriverGCS = "gcs"
)

type Config struct {
	App
	Storage
	PostgreSQL
	HTTP
}

type App struct {
	MaxUploadSize     int64
	DownloadURLTTL    time.Duration
	ProgressRetention time.Duration
	SweepInterval     time.Duration
}

type Storage struct {
	Driver string
	S3     S3
	GCS    GCS
}

type S3 struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

type GCS struct {
	Bucket          string
	CredentialsFile string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type HTTP struct {
	Host            string
	Port            string
	IdleTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	AllowedOrigins  []string
	RateLimit       int
	RateLimitWindow time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			MaxUploadSize:     cmd.Int64("max-upload-size"),
			DownloadURLTTL:    cmd.Duration("download-url-ttl"),
			ProgressRetention: cmd.Duration("progress-retention"),
			SweepInterval:     cmd.Duration("sweep-interval"),
		},
		Storage: Storage{
			Driver: cmd.String("storage-driver"),
			S3: S3{
				Bucket:          cmd.String("s3-bucket"),
				Region:          cmd.String("s3-region"),
				Endpoint:        cmd.String("s3-endpoint"),
				AccessKeyID:     cmd.String("s3-access-key-id"),
				SecretAccessKey: cmd.String("s3-secret-access-key"),
				UsePathStyle:    cmd.Bool("s3-use-path-style"),
			},
			GCS: GCS{
				Bucket:          cmd.String("gcs-bucket"),
				CredentialsFile: cmd.String("gcs-credentials-file"),
			},
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:            cmd.String("http-host"),
			Port:            cmd.String("http-port"),
			IdleTimeout:     cmd.Duration("http-idle-timeout"),
			ReadTimeout:     cmd.Duration("http-read-timeout"),
			WriteTimeout:    cmd.Duration("http-write-timeout"),
			AllowedOrigins:  cmd.StringSlice("http-allowed-origins"),
			RateLimit:       cmd.Int("http-rate-limit"),
			RateLimitWindow: cmd.Duration("http-rate-limit-window"),
		},
	}
}
