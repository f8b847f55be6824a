package toolchain_test

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/zidar/pkg/toolchain"
)

func TestNewHashedTool(t *testing.T) {
	content := []byte("#!/bin/sh\necho fake compiler\n")
	path := filepath.Join(t.TempDir(), "cc")
	require.NoError(t, os.WriteFile(path, content, 0o755))

	tool, err := toolchain.NewHashedTool(path)
	require.NoError(t, err)
	require.Equal(t, path, tool.Path())

	sum := sha256.Sum256(content)
	require.Equal(t, hex.EncodeToString(sum[:]), tool.Fingerprint())

	same, err := toolchain.NewHashedTool(path)
	require.NoError(t, err)
	require.Equal(t, tool.Fingerprint(), same.Fingerprint(), "Fingerprinting must be deterministic")
}

func TestNewHashedTool_Missing(t *testing.T) {
	_, err := toolchain.NewHashedTool(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestConstantToolProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clang")
	require.NoError(t, os.WriteFile(path, []byte("clang"), 0o755))

	tool, err := toolchain.NewHashedTool(path)
	require.NoError(t, err)

	provider := toolchain.NewConstantToolProvider(tool, "//third-party:llvm")

	resolved, err := provider.Resolve(toolchain.NewResolver("a"))
	require.NoError(t, err)
	require.Equal(t, tool, resolved)

	again, err := provider.Resolve(toolchain.NewResolver("b"))
	require.NoError(t, err)
	require.Equal(t, resolved, again, "The handle is context independent")

	require.Equal(t, []string{"//third-party:llvm"}, provider.UpstreamDeps())
}
