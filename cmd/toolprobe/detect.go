package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tmaxmax/zidar/pkg/toolchain"
	"github.com/tmaxmax/zidar/pkg/toolchain/cxx"
)

func newDetectCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Find known compilers on PATH and classify them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(cmd, opts)
		},
	}
}

func runDetect(cmd *cobra.Command, opts *cliOptions) error {
	found, err := cxx.Detect(opts.logger)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return errors.New("no known compilers found on PATH")
	}

	resolver := toolchain.NewResolver("detect")
	drivers := make([]*cxx.Driver, len(found))

	g, _ := errgroup.WithContext(cmd.Context())
	for i, compiler := range found {
		i, compiler := i, compiler

		g.Go(func() error {
			driver, err := compiler.Provider.Resolve(resolver)
			if err != nil {
				return fmt.Errorf("%s: %w", compiler.Name, err)
			}

			drivers[i] = driver
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, compiler := range found {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", compiler.Name, drivers[i].Family(), compiler.Path)
	}

	return nil
}
