package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

const logLevelEnv = "FILE_STORAGE_LOG_LEVEL"

type loggerKey struct{}

func main() {
	log := newLogger(os.Getenv(logLevelEnv))

	ctx := context.WithValue(context.Background(), loggerKey{}, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "stopped app due to the error %q\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. Unknown levels fall back to debug.
func newLogger(level string) *slog.Logger {
	lvl := slog.LevelDebug
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelDebug
		}
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})).With(slog.String("service", "file_storage"), slog.String("version", version))
}
