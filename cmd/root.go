package cmd

import (
	"errors"
	"os"

	"liblog/pkg/log"
	"liblog/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands. These follow common conventions so scripts can
// tell a transient tool failure from a permanently unavailable log device.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeBadChannel indicates an unknown channel name or identifier.
	ExitCodeBadChannel = 2
	// ExitCodeUnavailable indicates the log channels could not be opened.
	ExitCodeUnavailable = 3
)

var (
	configPath string
	verbose    bool
)

// rootCmd represents the base command for the logwrite tool.
var rootCmd = &cobra.Command{
	Use:   "logwrite",
	Short: "Write records to the device log channels",
	Long: `logwrite frames log records and delivers them through the kernel-backed
log channels (main, radio, events, system), exactly the way in-process
callers of the log library do. On hosts without log devices it can be
pointed at systemd-journald via the config file.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		logging.Init(level, cmd.ErrOrStderr())
		return nil
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "logwrite version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error kind.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if errors.Is(err, log.ErrBadChannel) {
		return ExitCodeBadChannel
	}
	if errors.Is(err, log.ErrChannelUnavailable) {
		return ExitCodeUnavailable
	}
	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/logwrite/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics on stderr")

	rootCmd.AddCommand(newWriteCmd())
	rootCmd.AddCommand(newEventCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newVersionCmd())
}
