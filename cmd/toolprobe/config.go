package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmaxmax/zidar/pkg/toolchain"
)

// Manifest lists the tools to probe.
type Manifest struct {
	Tools []ManifestTool `yaml:"tools"`
}

// ManifestTool is one tool entry: where the executable lives and, optionally,
// an explicit family that skips probing entirely.
type ManifestTool struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Family string `yaml:"family,omitempty"`
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest %q: %w", path, err)
	}

	if len(m.Tools) == 0 {
		return nil, fmt.Errorf("manifest %q lists no tools", path)
	}

	for i, tool := range m.Tools {
		if tool.Name == "" || tool.Path == "" {
			return nil, fmt.Errorf("manifest %q: tool %d is missing a name or a path", path, i)
		}
		if tool.Family != "" {
			if _, err := toolchain.ParseFamily(tool.Family); err != nil {
				return nil, fmt.Errorf("manifest %q: tool %q: %w", path, tool.Name, err)
			}
		}
	}

	return &m, nil
}
