package printhelper

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestRun_AllCandidatesMissing(t *testing.T) {
	r := NewExecRunner(t.TempDir(), []Command{{Path: "print.exe"}, {Path: "print"}})

	_, ok := r.Resolve()
	assert.False(t, ok)

	inv, err := r.Run(context.Background(), "bill.json")
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, ErrNoHelper)
}

func TestRun_SkipsMissingCandidate(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "print", `echo "rendered $1"`)

	r := NewExecRunner(dir, []Command{{Path: "print.exe"}, {Path: "print"}})

	resolved, ok := r.Resolve()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "print"), resolved)

	inv, err := r.Run(context.Background(), "bill.json")
	require.NoError(t, err)
	assert.Equal(t, "rendered bill.json", inv.Stdout)
}

func TestRun_NonZeroExitDoesNotFallThrough(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "print.exe", `echo "bad input" >&2; exit 3`)
	writeScript(t, dir, "print", `echo "should never run"`)

	r := NewExecRunner(dir, []Command{{Path: "print.exe"}, {Path: "print"}})

	inv, err := r.Run(context.Background(), "bill.json")
	require.Error(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, "bad input", inv.Stderr)
	assert.Empty(t, inv.Stdout)
}

func TestRun_SpawnFailureFallsThrough(t *testing.T) {
	dir := t.TempDir()
	// Exists but is not executable, so Start fails and the next candidate runs.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "print.exe"), []byte("not a binary"), 0o644))
	writeScript(t, dir, "print", `echo "fallback"`)

	r := NewExecRunner(dir, []Command{{Path: "print.exe"}, {Path: "print"}})

	inv, err := r.Run(context.Background(), "bill.json")
	require.NoError(t, err)
	assert.Equal(t, "fallback", inv.Stdout)
}

func TestRun_RunsInWorkDir(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "print", `pwd`)

	r := NewExecRunner(dir, []Command{{Path: "print"}})

	inv, err := r.Run(context.Background(), "bill.json")
	require.NoError(t, err)

	got, err := filepath.EvalSymlinks(inv.Stdout)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRun_ExtraArgsPrecedeArtifact(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "print", `echo "$1 $2"`)

	r := NewExecRunner(dir, []Command{{Path: "print", Args: []string{"--silent"}}})

	inv, err := r.Run(context.Background(), "bill.json")
	require.NoError(t, err)
	assert.Equal(t, "--silent bill.json", inv.Stdout)
}

func TestNullRunner(t *testing.T) {
	r := NewNullRunner()

	_, ok := r.Resolve()
	assert.False(t, ok)

	inv, err := r.Run(context.Background(), "bill.json")
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, ErrNoHelper)
}
