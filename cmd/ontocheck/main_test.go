package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, strings.Repeat("=", 80)))
	assert.Contains(t, out, "ORPHANED NODES: 4\n")
	assert.Contains(t, out, "✓ CONNECTED: System Notification Service\n")
	assert.Contains(t, out, "Total orphaned nodes found: 4\n")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	out, err := execute(t, "extra")
	require.Error(t, err)
	assert.NotContains(t, out, "ORPHAN NODE ANALYSIS")
}

func TestRootCmd_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "ontocheck checks the Apollo knowledge graph")
	assert.NotContains(t, out, "ORPHAN NODE ANALYSIS")
}
