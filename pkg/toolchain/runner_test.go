package toolchain_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmaxmax/zidar/pkg/toolchain"
)

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell available on this host")
	}
}

func TestExecRunner(t *testing.T) {
	requireShell(t)

	runner := toolchain.ExecRunner{}

	res, err := runner.Run(context.Background(), []string{"sh", "-c", "echo hello"})
	require.NoError(t, err)
	require.Zero(t, res.ExitCode)
	require.Equal(t, "hello\n", res.Stdout)

	res, err = runner.Run(context.Background(), []string{"sh", "-c", "exit 3"})
	require.NoError(t, err, "A completed process is not a launch failure")
	require.Equal(t, 3, res.ExitCode)

	_, err = runner.Run(context.Background(), []string{"./definitely-not-an-executable"})
	require.Error(t, err)

	_, err = runner.Run(context.Background(), nil)
	require.Error(t, err)
}

func TestProbeError_Message(t *testing.T) {
	err := &toolchain.ProbeError{
		Argv:     []string{"/usr/bin/cc", "--version"},
		ExitCode: 2,
		Output:   "unrecognized option\n",
	}
	require.Contains(t, err.Error(), `"/usr/bin/cc --version"`)
	require.Contains(t, err.Error(), "status 2")
	require.Contains(t, err.Error(), "unrecognized option")
}
