package cmd

import (
	"liblog/pkg/log"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show dispatcher state and channel availability",
		Long: `Status reports whether the log device is available, the dispatcher's
lifecycle state, and each channel's output handle. The dispatcher opens
its channels lazily on first write, so handles stay unopened until
--open forces a probe record through the main channel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupFromConfig(); err != nil {
				return err
			}

			if open {
				// Probe record: forces the one-time initialization.
				if _, err := log.Write(log.PriorityVerbose, "logwrite", "status probe"); err != nil {
					cmd.Printf("probe write failed: %v\n", err)
				}
			}

			cmd.Printf("device available: %v\n", log.DeviceAvailable())
			cmd.Printf("dispatcher state: %s\n", log.CurrentState())

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Channel", "Handle"})
			for _, ch := range []log.Channel{log.ChannelMain, log.ChannelRadio, log.ChannelEvents, log.ChannelSystem} {
				handle := log.ChannelHandle(ch)
				if handle == "" {
					handle = "unopened"
				}
				t.AppendRow(table.Row{ch.String(), handle})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "write a probe record to force channel initialization")

	return cmd
}
