package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liblog/pkg/log"
)

// fakeConfig writes a config file selecting the in-memory transport, so CLI
// tests never touch real devices.
func fakeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transport: fake\n"), 0644))
	return path
}

// resetFlags restores every flag on the shared root command (and its
// subcommands) to its default, so flag values set by one test do not leak
// into the next through the package-level cobra command.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLIWriteBadChannel(t *testing.T) {
	cfg := fakeConfig(t)

	_, err := executeCLI(t, "--config", cfg, "write", "-b", "bogus", "-t", "X", "-p", "i", "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, log.ErrBadChannel)
	assert.Equal(t, ExitCodeBadChannel, getExitCode(err))
}

func TestCLIWriteDeliversRecord(t *testing.T) {
	cfg := fakeConfig(t)

	out, err := executeCLI(t, "--config", cfg, "write", "-b", "main", "-t", "X", "-p", "i", "hello")
	require.NoError(t, err)
	// priority byte + "X\0" + "hello\0"
	assert.Contains(t, out, "wrote 9 bytes to main")
}

func TestCLIEventRejectsBadHexPayload(t *testing.T) {
	cfg := fakeConfig(t)

	_, err := executeCLI(t, "--config", cfg, "event", "--tag-id", "7", "--hex", "zz")
	require.Error(t, err)
	assert.Equal(t, ExitCodeError, getExitCode(err))
}

func TestCLIEventDeliversToEventsChannel(t *testing.T) {
	cfg := fakeConfig(t)

	out, err := executeCLI(t, "--config", cfg, "event", "--tag-id", "7", "--type", "3", "payload")
	require.NoError(t, err)
	// 4-byte tag id + type byte + payload
	assert.Contains(t, out, "wrote 12 bytes to events")
}

func TestCLIStatusReportsState(t *testing.T) {
	cfg := fakeConfig(t)

	out, err := executeCLI(t, "--config", cfg, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "dispatcher state:")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "events")
}
