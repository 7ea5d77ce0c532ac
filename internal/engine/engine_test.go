package engine

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gotest.tools/v3/assert"

	domainerrors "github.com/leengari/phonequery/internal/domain/errors"
	"github.com/leengari/phonequery/internal/planner/predicate"
	"github.com/leengari/phonequery/internal/query/operations/testutil"
)

func quietEngine() *Engine {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoad_EmitsEvents(t *testing.T) {
	eng := quietEngine()
	observer := &MockObserver{}
	eng.AddObserver(observer)

	table, err := eng.Load("../storage/loader/testdata/phone_data.csv")
	assert.NilError(t, err)
	assert.Equal(t, table.Len(), 14)

	assert.Equal(t, len(observer.Events), 2)
	assert.Equal(t, observer.Events[0].Type, EventLoadStart)
	assert.Equal(t, observer.Events[1].Type, EventLoadEnd)
	assert.Equal(t, observer.Events[0].QueryID, observer.Events[1].QueryID)
	_, err = uuid.Parse(observer.Events[0].QueryID)
	assert.NilError(t, err)

	result := observer.Events[1].Data.(LoadResult)
	assert.Equal(t, result.Rows, 14)
	assert.NilError(t, result.Err)
}

func TestLoad_MissingFile(t *testing.T) {
	eng := quietEngine()
	observer := &MockObserver{}
	eng.AddObserver(observer)

	table, err := eng.Load("does/not/exist.csv")

	assert.Assert(t, table == nil)
	var notFound *domainerrors.ResourceNotFoundError
	assert.Assert(t, errors.As(err, &notFound))
	assert.Equal(t, len(observer.Events), 2)
	assert.Assert(t, observer.Events[1].Data.(LoadResult).Err != nil)
}

func TestFilter_BindsParamsAtCallTime(t *testing.T) {
	eng := quietEngine()
	table := testutil.CreatePhoneTable()
	expr := predicate.And(
		predicate.Eq("item", predicate.Lit("call")),
		predicate.Ne("network_type", predicate.Param("network")),
		predicate.Lt("duration", predicate.Param("max_duration")),
	)

	result, err := eng.Filter(table, expr, predicate.Params{"network": "landline", "max_duration": 60})
	assert.NilError(t, err)
	assert.DeepEqual(t, testutil.Keys(t, result), []int64{1, 12})

	result, err = eng.Filter(table, expr, predicate.Params{"network": "mobile", "max_duration": 60})
	assert.NilError(t, err)
	assert.DeepEqual(t, testutil.Keys(t, result), []int64{8, 12})
}

func TestFilter_UnboundParam(t *testing.T) {
	eng := quietEngine()
	observer := &MockObserver{}
	eng.AddObserver(observer)

	_, err := eng.Filter(testutil.CreatePhoneTable(), predicate.Lt("duration", predicate.Param("max_duration")), nil)

	var unbound *predicate.UnboundParamError
	assert.Assert(t, errors.As(err, &unbound))
	assert.Equal(t, len(observer.Events), 0)
}

func TestFilter_EmitsCounts(t *testing.T) {
	eng := quietEngine()
	observer := &MockObserver{}
	eng.AddObserver(observer)

	_, err := eng.Filter(testutil.CreatePhoneTable(), predicate.HasPrefix("item", "ca"), nil)
	assert.NilError(t, err)

	assert.Equal(t, len(observer.Events), 2)
	assert.Equal(t, observer.Events[0].Data, `item.startswith("ca")`)
	result := observer.Events[1].Data.(FilterResult)
	assert.Equal(t, result.Scanned, 14)
	assert.Equal(t, result.Matched, 7)
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := New(logger)
	eng.AddObserver(NewLoggingObserver(logger))

	_, err := eng.Filter(testutil.CreatePhoneTable(), predicate.HasPrefix("item", "ca"), nil)
	assert.NilError(t, err)

	out := buf.String()
	assert.Assert(t, strings.Contains(out, "event=filter_start"), out)
	assert.Assert(t, strings.Contains(out, "event=filter_end"), out)
}
