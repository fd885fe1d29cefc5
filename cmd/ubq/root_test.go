package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"-v", "--version"} {
		out, err := execute(t, flag)
		require.NoError(t, err)
		assert.Equal(t, "ubq 0.5\n", out)
	}
}

func TestTooManyArguments(t *testing.T) {
	_, err := execute(t, "a", "b")
	assert.Error(t, err)
}

func TestEmptyPlaceholder(t *testing.T) {
	_, err := execute(t, "-p", "", filepath.Join(t.TempDir(), "cmds"))
	assert.EqualError(t, err, "placeholder must not be empty")
}

func TestMissingCommandFile(t *testing.T) {
	if _, err := exec.LookPath("ps"); err != nil {
		t.Skip("ps not available")
	}

	path := filepath.Join(t.TempDir(), "missing")

	_, err := execute(t, path)
	assert.EqualError(t, err, "no such file or directory: '"+path+"'")
}

func TestCommandFileIsDirectory(t *testing.T) {
	if _, err := exec.LookPath("ps"); err != nil {
		t.Skip("ps not available")
	}

	dir := t.TempDir()

	_, err := execute(t, dir)
	assert.EqualError(t, err, "is a directory: '"+dir+"'")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--init"})
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "ubq", "config.toml"))
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Config initialized at:")
}
