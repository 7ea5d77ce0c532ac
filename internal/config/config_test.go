package config

import (
	"log/slog"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/env"
	"gotest.tools/v3/fs"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	assert.NilError(t, err)
	assert.DeepEqual(t, cfg, Default())
	assert.Equal(t, cfg.HeadRows, 5)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		EnvLogLevel: "debug",
		EnvSeqURL:   " http://localhost:5341 ",
		EnvHeadRows: "3",
	}))
	assert.NilError(t, err)
	assert.Equal(t, cfg.LogLevel, slog.LevelDebug)
	assert.Equal(t, cfg.SeqURL, "http://localhost:5341")
	assert.Equal(t, cfg.HeadRows, 3)
}

func TestFromLookup_Invalid(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{EnvLogLevel: "loud"}))
	assert.ErrorContains(t, err, EnvLogLevel)

	_, err = FromLookup(lookupFrom(map[string]string{EnvHeadRows: "-1"}))
	assert.ErrorContains(t, err, EnvHeadRows)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := fs.NewDir(t, "phonequery", fs.WithFile(".env", EnvHeadRows+"=2\n"+EnvLogLevel+"=debug\n"))
	defer env.ChangeWorkingDir(t, dir.Path())()
	env.PatchAll(t, map[string]string{EnvLogLevel: "info"})

	cfg, err := Load()
	assert.NilError(t, err)
	assert.Equal(t, cfg.HeadRows, 2)
	assert.Equal(t, cfg.LogLevel, slog.LevelInfo, "existing environment wins over .env")
}

func TestLoad_NoDotEnv(t *testing.T) {
	dir := fs.NewDir(t, "phonequery")
	defer env.ChangeWorkingDir(t, dir.Path())()
	env.Patch(t, EnvLogLevel, "error")

	cfg, err := Load()
	assert.NilError(t, err)
	assert.Equal(t, cfg.LogLevel, slog.LevelError)
}
