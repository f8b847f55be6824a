package cxx_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/zidar/pkg/toolchain"
	"github.com/tmaxmax/zidar/pkg/toolchain/cxx"
)

func TestRegisterExecutable_Invalid(t *testing.T) {
	require.Panics(t, func() { cxx.RegisterExecutable("gcc") }, "Duplicate registration must panic")
	require.Panics(t, func() { cxx.RegisterExecutable("") })
	require.Panics(t, func() { cxx.RegisterExecutable(filepath.Join("usr", "bin", "cc")) })
}

func TestDetect(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell available on this host")
	}

	// A PATH holding exactly one registered compiler name, backed by a
	// script that prints a Clang banner.
	dir := t.TempDir()
	script := "#!/bin/sh\necho 'clang version 9.0.0 (tags/RELEASE_900/final)'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clang"), []byte(script), 0o755))
	t.Setenv("PATH", dir)

	found, err := cxx.Detect(nil)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "clang", found[0].Name)
	require.Equal(t, filepath.Join(dir, "clang"), found[0].Path)

	d, err := found[0].Provider.Resolve(toolchain.NewResolver("detect"))
	require.NoError(t, err)
	require.Equal(t, toolchain.Clang, d.Family())
}
