package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// RunResult is the outcome of a completed process invocation.
type RunResult struct {
	// ExitCode the process exited with.
	ExitCode int
	// Stdout holds the captured standard output of the process.
	Stdout string
}

// A Runner executes a command line and captures its standard output. It is
// the process-execution boundary of this package: timeout and cancellation
// policy belong to Runner implementations, not to their callers here.
//
// Run returns an error only if the process could not be launched or was
// interrupted; a process that ran to completion is reported through
// RunResult, whatever its exit code.
type Runner interface {
	Run(ctx context.Context, argv []string) (RunResult, error)
}

// ExecRunner runs commands on the host with os/exec. No standard input is
// supplied and the parent environment is inherited unchanged.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(ctx context.Context, argv []string) (RunResult, error) {
	if len(argv) == 0 {
		return RunResult{}, errors.New("toolchain: empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	stdout, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return RunResult{ExitCode: exitErr.ExitCode(), Stdout: string(stdout)}, nil
		}
		return RunResult{}, err
	}

	return RunResult{Stdout: string(stdout)}, nil
}

// ProbeError reports a failed attempt to interrogate a tool for its version.
// It always carries the exact command line attempted, so a misconfigured or
// missing toolchain can be diagnosed from the message alone.
type ProbeError struct {
	// Argv is the command line that was attempted.
	Argv []string
	// ExitCode the tool exited with, if it ran at all.
	ExitCode int
	// Output captured from the tool, if any.
	Output string
	// Err is the launch or interrupt error, if the tool never ran.
	Err error
}

func (e *ProbeError) Error() string {
	command := strings.Join(e.Argv, " ")
	if e.Err != nil {
		return fmt.Sprintf("toolchain: failed to run %q: %v", command, e.Err)
	}

	msg := fmt.Sprintf("toolchain: %q exited with unexpected status %d", command, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *ProbeError) Unwrap() error { return e.Err }
