package main

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tmaxmax/zidar/pkg/toolchain"
	"github.com/tmaxmax/zidar/pkg/toolchain/cxx"
)

func newProbeCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <manifest>",
		Short: "Probe and classify the tools listed in a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, opts, args[0])
		},
	}
}

type probeReport struct {
	name        string
	family      toolchain.Family
	path        string
	fingerprint string
	size        string
}

func runProbe(cmd *cobra.Command, opts *cliOptions, manifestPath string) error {
	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	// One resolution context per run: every tool's driver is built once.
	resolver := toolchain.NewResolver("toolprobe")
	reports := make([]probeReport, len(manifest.Tools))

	g, _ := errgroup.WithContext(cmd.Context())
	for i, tool := range manifest.Tools {
		i, tool := i, tool

		g.Go(func() error {
			report, err := probeTool(opts, resolver, tool)
			if err != nil {
				return err
			}

			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n  family: %s\n  path: %s\n  fingerprint: %s\n  size: %s\n",
			r.name, r.family, r.path, r.fingerprint, r.size)
	}

	return nil
}

func probeTool(opts *cliOptions, resolver *toolchain.Resolver, tool ManifestTool) (probeReport, error) {
	var family *toolchain.Family
	if tool.Family != "" {
		f, err := toolchain.ParseFamily(tool.Family)
		if err != nil {
			return probeReport{}, err
		}
		family = &f
	}

	provider, err := cxx.NewCompilerProvider(tool.Path, family, opts.logger)
	if err != nil {
		return probeReport{}, fmt.Errorf("%s: %w", tool.Name, err)
	}

	driver, err := provider.Resolve(resolver)
	if err != nil {
		return probeReport{}, fmt.Errorf("%s: %w", tool.Name, err)
	}

	stat, err := os.Stat(tool.Path)
	if err != nil {
		return probeReport{}, fmt.Errorf("%s: %w", tool.Name, err)
	}

	return probeReport{
		name:        tool.Name,
		family:      driver.Family(),
		path:        driver.Tool().Path(),
		fingerprint: driver.Tool().Fingerprint()[:12],
		size:        units.HumanSize(float64(stat.Size())),
	}, nil
}
