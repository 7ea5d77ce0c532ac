package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"

	"github.com/leengari/phonequery/internal/config"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_Testdata(t *testing.T) {
	var out bytes.Buffer

	code := run(&out, "../../internal/storage/loader/testdata/phone_data.csv", config.Default(), quietLogger())

	assert.Equal(t, code, 0)
	got := out.String()
	assert.Assert(t, strings.HasPrefix(got, "Dataset loaded"))
	assert.Equal(t, strings.Count(got, strings.Repeat("-", 50)), 6)
	assert.Assert(t, strings.HasSuffix(got, "Query examples finished.\n"))
}

func TestRun_MissingFile(t *testing.T) {
	dir := fs.NewDir(t, "phonequery")
	path := dir.Join(config.DataPath)
	var out bytes.Buffer

	code := run(&out, path, config.Default(), quietLogger())

	assert.Equal(t, code, 1)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 2)
	assert.Assert(t, strings.Contains(lines[0], path))
	assert.Assert(t, !strings.Contains(out.String(), "-----"))
}

func TestRun_MalformedDate(t *testing.T) {
	file := fs.NewFile(t, "phone", fs.WithContent(
		"index,date,duration,item,month,network,network_type\n"+
			"0,not a date,1.0,sms,2014-11,Vodafone,mobile\n"))
	var out bytes.Buffer

	code := run(&out, file.Path(), config.Default(), quietLogger())

	assert.Equal(t, code, 1)
	assert.Equal(t, out.Len(), 0)
}
