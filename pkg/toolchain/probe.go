package toolchain

import (
	"context"
	"strings"
	"sync"

	"github.com/docker/go-units"
	"go.uber.org/zap"
)

// versionFlag is the only argument a Probe ever passes to a tool.
const versionFlag = "--version"

// A Probe classifies an executable by running it once with a version query
// and matching the captured output against the known vendor banners.
//
// The classification runs at most once per Probe, on first demand, and its
// outcome is shared by every caller. A failed probe is frozen: each
// subsequent call observes the same error, with no retry for the lifetime
// of the Probe.
type Probe struct {
	// Path of the executable to interrogate.
	Path string
	// Runner used to spawn the executable. Defaults to ExecRunner.
	Runner Runner
	// Logger for probe diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	once   sync.Once
	family Family
	err    error
}

// Family returns the classified family, probing the executable on the first
// call. Concurrent first callers block until the single invocation completes
// and then share its result.
func (p *Probe) Family() (Family, error) {
	p.once.Do(func() {
		p.family, p.err = p.run()
	})
	return p.family, p.err
}

func (p *Probe) run() (Family, error) {
	runner := p.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	argv := []string{p.Path, versionFlag}
	res, err := runner.Run(context.Background(), argv)
	if err != nil {
		perr := &ProbeError{Argv: argv, Err: err}
		log.Error("tool version probe failed to launch", zap.Strings("argv", argv), zap.Error(err))
		return 0, perr
	}
	if res.ExitCode != 0 {
		perr := &ProbeError{Argv: argv, ExitCode: res.ExitCode, Output: res.Stdout}
		log.Error("tool version probe exited with unexpected status",
			zap.Strings("argv", argv), zap.Int("exitCode", res.ExitCode))
		return 0, perr
	}

	lines := splitLines(res.Stdout)
	log.Debug("tool version probe output",
		zap.Strings("argv", argv),
		zap.String("captured", units.HumanSize(float64(len(res.Stdout)))),
		zap.Strings("lines", lines))

	return FamilyFromVersionOutput(lines), nil
}

func splitLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
}
