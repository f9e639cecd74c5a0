package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecCommandRunner_RunCapturesStderr(t *testing.T) {
	requireShell(t)

	var tee bytes.Buffer
	r := &ExecCommandRunner{Stderr: &tee}

	err := r.Run(context.Background(), "sh", "-c", "echo 'no audio stream' >&2; exit 3")
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, "sh", cmdErr.Name)
	assert.Contains(t, cmdErr.Stderr, "no audio stream")
	assert.Contains(t, err.Error(), "exited with code 3: no audio stream")
	assert.Contains(t, tee.String(), "no audio stream")
}

func TestExecCommandRunner_RunSuccess(t *testing.T) {
	requireShell(t)

	r := &ExecCommandRunner{}
	assert.NoError(t, r.Run(context.Background(), "sh", "-c", "exit 0"))
}

func TestExecCommandRunner_Output(t *testing.T) {
	requireShell(t)

	r := &ExecCommandRunner{}
	out, err := r.Output(context.Background(), "sh", "-c", "printf '12.5\\n'")
	require.NoError(t, err)
	assert.Equal(t, "12.5\n", string(out))
}

func TestExecCommandRunner_MissingBinary(t *testing.T) {
	r := &ExecCommandRunner{}
	err := r.Run(context.Background(), "definitely-not-a-real-transcoder")
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode)
	assert.Contains(t, err.Error(), "definitely-not-a-real-transcoder")
}

func TestLastLines(t *testing.T) {
	assert.Equal(t, "", lastLines("\n\n", 3))
	assert.Equal(t, "c | d", lastLines("a\nb\n\nc\nd\n", 2))
}
