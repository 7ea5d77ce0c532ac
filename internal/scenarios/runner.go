package scenarios

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/leengari/phonequery/internal/domain/schema"
	"github.com/leengari/phonequery/internal/engine"
	"github.com/leengari/phonequery/internal/query/operations"
	"github.com/leengari/phonequery/internal/report"
)

// Runner executes scenarios one after another and prints their first rows
type Runner struct {
	Engine *engine.Engine
	Out    io.Writer
	Head   int // rows printed per scenario; the filter itself is never truncated
	Logger *slog.Logger
}

// Run filters table with every scenario in order. Each scenario sees the full table.
func (r *Runner) Run(table *schema.Table, list []Scenario) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for i, sc := range list {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}

		result, err := r.Engine.Filter(table, sc.Expr, sc.Params)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}

		logger.Info("scenario evaluated",
			slog.String("scenario", sc.Name),
			slog.String("expr", sc.Expr.String()),
			slog.Int("matched", result.Len()),
		)

		if err := report.PrintSection(r.Out, sc.Label, operations.Head(result, r.Head)); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}
	return nil
}
