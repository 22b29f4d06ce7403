package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withOptions(t *testing.T, o options) {
	saved := *opts
	*opts = o
	t.Cleanup(func() { *opts = saved })
}

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "absdom.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	withOptions(t, options{
		domain:             "interval-parity",
		task:               "run",
		maxReductionRounds: DefaultMaxReductionRounds,
	})

	path := writeConfig(t, `
domain = "parity"
max-reduction-rounds = 8
no-colorize = true
`)
	require.NoError(t, loadConfig(path, map[string]bool{}))

	require.True(t, Opts().Domain().IsParity())
	require.Equal(t, 8, Opts().MaxReductionRounds())
	require.True(t, Opts().NoColorize())
	require.True(t, Opts().Task().IsRun())
	require.NoError(t, validate())
}

func TestLoadConfigFlagsTakePrecedence(t *testing.T) {
	withOptions(t, options{
		domain:             "interval",
		task:               "run",
		maxReductionRounds: DefaultMaxReductionRounds,
	})

	path := writeConfig(t, `
domain = "parity"
verbose = true
`)
	require.NoError(t, loadConfig(path, map[string]bool{"domain": true}))

	require.True(t, Opts().Domain().IsInterval())
	require.True(t, Opts().Verbose())
}

func TestLoadConfigErrors(t *testing.T) {
	withOptions(t, options{task: "run", domain: "interval", maxReductionRounds: 1})

	require.Error(t, loadConfig(filepath.Join(t.TempDir(), "missing.toml"), nil))
	require.Error(t, loadConfig(writeConfig(t, `domain = `), nil))
	require.Error(t, loadConfig(writeConfig(t, `colour = true`), nil))
}

func TestValidate(t *testing.T) {
	withOptions(t, options{task: "run", domain: "interval", maxReductionRounds: 1})
	require.NoError(t, validate())

	opts.task = "fly"
	require.Error(t, validate())

	opts.task = "laws"
	opts.domain = "sign"
	require.Error(t, validate())

	opts.domain = "parity"
	opts.maxReductionRounds = 0
	require.Error(t, validate())
}
