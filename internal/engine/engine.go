package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/phonequery/internal/domain/schema"
	"github.com/leengari/phonequery/internal/planner/predicate"
	"github.com/leengari/phonequery/internal/query/operations"
	"github.com/leengari/phonequery/internal/storage/loader"
)

// Engine loads datasets and runs filters over them, notifying observers
// at the start and end of every operation.
// It holds no dataset itself: tables are passed explicitly to each call.
type Engine struct {
	logger    *slog.Logger
	observers []Observer
}

// New creates a new Engine. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// LoadResult is the Data of an EventLoadEnd event
type LoadResult struct {
	Path string
	Rows int
	Err  error
}

// FilterResult is the Data of an EventFilterEnd event
type FilterResult struct {
	Expr    string
	Scanned int
	Matched int
	Elapsed time.Duration
}

// Load reads the CSV dataset at path
func (e *Engine) Load(path string) (*schema.Table, error) {
	id := uuid.New().String()

	e.notify(Event{Type: EventLoadStart, QueryID: id, Data: path})
	table, err := loader.LoadTable(path, e.logger)
	if err != nil {
		e.notify(Event{Type: EventLoadEnd, QueryID: id, Data: LoadResult{Path: path, Err: err}})
		return nil, err
	}
	e.notify(Event{Type: EventLoadEnd, QueryID: id, Data: LoadResult{Path: path, Rows: table.Len()}})

	return table, nil
}

// Filter returns the rows of table matching expr, with params bound at call time.
// The table is read, never modified.
func (e *Engine) Filter(table *schema.Table, expr predicate.Expr, params predicate.Params) (*schema.Table, error) {
	pred, err := predicate.Bind(expr, params)
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", table.Name, err)
	}

	id := uuid.New().String()
	e.notify(Event{Type: EventFilterStart, QueryID: id, Data: expr.String()})

	start := time.Now()
	result := operations.SelectWhere(table, pred)

	e.notify(Event{Type: EventFilterEnd, QueryID: id, Data: FilterResult{
		Expr:    expr.String(),
		Scanned: table.Len(),
		Matched: result.Len(),
		Elapsed: time.Since(start),
	}})

	return result, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, obs := range e.observers {
		if obs == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
