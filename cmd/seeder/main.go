package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"transaction-seeder/internal/config"
	apierrors "transaction-seeder/internal/errors"
	"transaction-seeder/internal/export"
	"transaction-seeder/internal/models"
	"transaction-seeder/internal/services"
)

const (
	cmdGenerate = "generate"
	cmdSeed     = "seed"
	cmdServe    = "serve"
)

var errConfig = errors.New("configuration error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	command := cmdGenerate
	if len(args) > 0 {
		switch args[0] {
		case cmdGenerate, cmdSeed, cmdServe:
			command, args = args[0], args[1:]
		case "help", "-h", "--help", "-help":
			printUsage(stdout)
			return 0
		}
	}

	if err := dispatch(ctx, command, args, stdout, stderr); err != nil {
		if errors.Is(err, errUsage) {
			return 1
		}
		code := errorCodeFor(err)
		fmt.Fprintf(stderr, "Error [%s]: %v\n", code, err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, command string, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	logger := newLogger(cfg.Logging, stderr)
	slog.SetDefault(logger)

	opts, err := parseOptions(command, args, cfg, stderr)
	if err != nil {
		return err
	}

	switch command {
	case cmdSeed:
		return runSeed(ctx, cfg, opts, logger, stdout)
	case cmdServe:
		return runServe(ctx, cfg, opts, logger)
	default:
		return runGenerate(ctx, opts, logger, stdout)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Synthetic transaction seeder")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  seeder [generate] [options] [rows]")
	fmt.Fprintln(w, "  seeder seed [options] [rows]")
	fmt.Fprintln(w, "  seeder serve [options] [rows]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  generate  Write a synthetic batch to CSV (default)")
	fmt.Fprintln(w, "  seed      Insert a synthetic batch into the configured database,")
	fmt.Fprintln(w, "            or stage it for review with -pending")
	fmt.Fprintln(w, "  serve     Seed the database and serve it over HTTP")
	fmt.Fprintln(w, "\nThe row count may come after the options or after --.")
	fmt.Fprintln(w, "Run 'seeder <command> -h' for the options of a command.")
}

// newLogger builds the stderr logger from LOG_LEVEL and LOG_FORMAT
func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// errorCodeFor maps a failure onto the error code printed next to it
func errorCodeFor(err error) apierrors.ErrorCode {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, services.ErrInvalidRowCount):
		return apierrors.GeneratorInvalidRowCount
	case errors.Is(err, models.ErrUnknownScenario):
		return apierrors.GeneratorUnknownScenario
	case errors.Is(err, models.ErrInvalidScenario):
		return apierrors.GeneratorInvalidScenario
	case errors.Is(err, export.ErrWriteFailed), errors.As(err, &pathErr):
		return apierrors.SystemIOError
	case errors.Is(err, errConfig):
		return apierrors.SystemConfigurationError
	default:
		return apierrors.SystemInternalError
	}
}
