package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leengari/phonequery/internal/config"
	domainerrors "github.com/leengari/phonequery/internal/domain/errors"
	"github.com/leengari/phonequery/internal/engine"
	"github.com/leengari/phonequery/internal/logging"
	"github.com/leengari/phonequery/internal/report"
	"github.com/leengari/phonequery/internal/scenarios"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(2)
	}

	logger, closeFn := logging.SetupLogger(cfg)
	defer closeFn()

	slog.SetDefault(logger)

	if code := run(os.Stdout, config.DataPath, cfg, logger); code != 0 {
		closeFn()
		os.Exit(code)
	}
}

// run loads the dataset at path and prints every scenario to out.
// It returns the process exit code.
func run(out io.Writer, path string, cfg config.Config, logger *slog.Logger) int {
	eng := engine.New(logger)
	eng.AddObserver(engine.NewLoggingObserver(logger))

	// 1. Load dataset
	table, err := eng.Load(path)
	if err != nil {
		var notFound *domainerrors.ResourceNotFoundError
		if errors.As(err, &notFound) {
			report.PrintResourceNotFound(out, notFound.Path)
			return 1
		}
		logger.Error("failed to load dataset", "path", path, "error", err)
		return 1
	}

	fmt.Fprintln(out, "Dataset loaded and 'date' column converted to datetime.")
	fmt.Fprintln(out)

	// 2. Run scenarios against the full table
	runner := &scenarios.Runner{
		Engine: eng,
		Out:    out,
		Head:   cfg.HeadRows,
		Logger: logger,
	}
	if err := runner.Run(table, scenarios.Catalog()); err != nil {
		logger.Error("scenario failed", "error", err)
		return 1
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Query examples finished.")
	return 0
}
