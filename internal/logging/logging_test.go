// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/internal/logging"
)

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := logging.New(logging.Options{Level: slog.LevelInfo, Console: &buf, NoColor: true})
	require.NoError(t, err)
	defer func() { require.NoError(t, closeFn()) }()

	log.Debug("hidden")
	log.Info("route computed", "hops", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "route computed")
	assert.Contains(t, out, "hops=3")
}

func TestNew_FanoutToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "routesim.log")
	log, closeFn, err := logging.New(logging.Options{
		Level:    slog.LevelDebug,
		Console:  &buf,
		NoColor:  true,
		FilePath: path,
	})
	require.NoError(t, err)

	log.Debug("advance", "position", 0.5)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=advance")
	assert.Contains(t, string(data), "position=0.5")
	assert.Contains(t, buf.String(), "advance")
}
