package toolchain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// A Tool is an immutable handle to an executable artifact: its path on the
// host plus a fingerprint of its contents. It is independent of any
// resolution context.
type Tool struct {
	path        string
	fingerprint string
}

// Path returns the location of the executable.
func (t Tool) Path() string { return t.path }

// Fingerprint returns the hex-encoded content hash of the executable.
func (t Tool) Fingerprint() string { return t.fingerprint }

// NewHashedTool builds a Tool for the executable at path, fingerprinting its
// contents with SHA-256. The fingerprint is computed once, here; the handle
// assumes the artifact stays stable for the lifetime of the process.
func NewHashedTool(path string) (Tool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tool{}, fmt.Errorf("toolchain: failed to fingerprint tool: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return Tool{}, fmt.Errorf("toolchain: failed to fingerprint tool %q: %w", path, err)
	}

	return Tool{path: path, fingerprint: hex.EncodeToString(h.Sum(nil))}, nil
}

// A ToolProvider resolves the Tool to use for a resolution context and
// declares the build-time dependency identifiers of that tool. Both are
// treated as black boxes by this package.
type ToolProvider interface {
	Resolve(r *Resolver) (Tool, error)
	UpstreamDeps() []string
}

// ConstantToolProvider serves the same Tool to every resolution context.
type ConstantToolProvider struct {
	tool Tool
	deps []string
}

var _ ToolProvider = (*ConstantToolProvider)(nil)

// NewConstantToolProvider returns a provider that always resolves to tool
// and declares the given upstream dependency identifiers.
func NewConstantToolProvider(tool Tool, deps ...string) *ConstantToolProvider {
	return &ConstantToolProvider{tool: tool, deps: deps}
}

func (p *ConstantToolProvider) Resolve(*Resolver) (Tool, error) { return p.tool, nil }

func (p *ConstantToolProvider) UpstreamDeps() []string { return p.deps }
