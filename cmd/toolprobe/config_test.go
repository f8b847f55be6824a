package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "tools.yaml")
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
tools:
  - name: host-cc
    path: /usr/bin/cc
  - name: cross-clang
    path: /opt/llvm/bin/clang
    family: clang
`)

	m, err := loadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Tools, 2)
	require.Equal(t, ManifestTool{Name: "host-cc", Path: "/usr/bin/cc"}, m.Tools[0])
	require.Equal(t, "clang", m.Tools[1].Family)
}

func TestLoadManifest_Invalid(t *testing.T) {
	type test struct {
		name    string
		content string
	}

	tests := []test{
		{name: "Empty", content: "tools: []\n"},
		{name: "MissingPath", content: "tools:\n  - name: cc\n"},
		{name: "MissingName", content: "tools:\n  - path: /usr/bin/cc\n"},
		{name: "UnknownFamily", content: "tools:\n  - name: cc\n    path: /usr/bin/cc\n    family: msvc-2010\n"},
		{name: "NotYAML", content: "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadManifest(writeManifest(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := loadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
