// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/config"
	"github.com/katalvlaran/routesim/topology"
)

const chainYAML = `
engine: {step: 0.5, tick: 1ms, seed: 3}
topology:
  routers: [R1, R2, R3, R4]
  links:
    - {a: R1, b: R2}
    - {a: R2, b: R3}
    - {a: R3, b: R4}
`

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--no-color"))
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRouteCmd(t *testing.T) {
	path := writeConfig(t, chainYAML)

	out, err := execute(t, "route", "R1", "R4", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "R1 -> R2 -> R3 -> R4 (cost 30.00, 3 hops)\n", out)

	_, err = execute(t, "route", "R1", "R9", "--config", path)
	assert.ErrorIs(t, err, topology.ErrUnknownRouter)

	_, err = execute(t, "route", "R1", "R4", "--config", path, "--policy", "fastest")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunCmd(t *testing.T) {
	path := writeConfig(t, chainYAML)

	out, err := execute(t, "run", "R1", "R4", "--config", path, "--count", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "R2 -> R3  50%")
	assert.Regexp(t, `2 packet\(s\) \(64KB each\) PKT_\d{4} routed from R1 to R4: R1 -> R2 -> R3 -> R4 \(Cost: 30\.00ms\)`, out)
	assert.Regexp(t, `Packet PKT_\d{4} delivered in \d+\.\d{2}s`, out)
}

func TestRunCmd_NoRoute(t *testing.T) {
	path := writeConfig(t, chainYAML+"    - {a: R2, b: R3, status: failed}\n")

	out, err := execute(t, "run", "R1", "R4", "--config", path)
	assert.ErrorIs(t, err, errNoRoute)
	assert.Contains(t, out, "No path found from R1 to R4")
}

func TestGenerateCmd_LoadsBack(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "gen.yaml")
	_, err := execute(t, "generate", "-n", "6", "--seed", "5", "-o", dst)
	require.NoError(t, err)

	cfg, err := config.Load(dst)
	require.NoError(t, err)
	assert.Nil(t, cfg.Random)
	assert.Len(t, cfg.Topology.Routers, 6)

	topo, err := cfg.BuildTopology()
	require.NoError(t, err)
	assert.Equal(t, len(cfg.Topology.Links), topo.LinkCount())

	_, err = execute(t, "generate", "-n", "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestReachCmd(t *testing.T) {
	path := writeConfig(t, chainYAML+"    - {a: R2, b: R3, status: failed}\n")

	out, err := execute(t, "reach", "R1", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "R1\t0\nR2\t1\n", out)

	out, err = execute(t, "reach", "R1", "--config", path, "--include-failed", "--max-hops", "2")
	require.NoError(t, err)
	assert.Equal(t, "R1\t0\nR2\t1\nR3\t2\n", out)
}
