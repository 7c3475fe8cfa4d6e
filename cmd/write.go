package cmd

import (
	"strings"

	"liblog/pkg/log"

	"github.com/spf13/cobra"
)

func newWriteCmd() *cobra.Command {
	var (
		priorityName string
		tag          string
		channelName  string
	)

	cmd := &cobra.Command{
		Use:   "write [message...]",
		Short: "Write a text record to a log channel",
		Long: `Write frames a text record (priority, tag, message) and delivers it to
the selected channel. Legacy telephony tags are rerouted to the radio
channel with the deprecation marker, exactly as library callers are.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupFromConfig(); err != nil {
				return err
			}

			ch, ok := log.ParseChannel(channelName)
			if !ok {
				return log.ErrBadChannel
			}
			prio := log.ParsePriority(priorityName)
			msg := strings.Join(args, " ")

			if !log.IsLoggable(prio, tag) {
				cmd.Printf("suppressed: %s/%s below threshold\n", prio, tag)
				return nil
			}

			n, err := log.WriteChannel(ch, prio, tag, msg)
			if err != nil {
				return err
			}
			cmd.Printf("wrote %d bytes to %s\n", n, ch)
			return nil
		},
	}

	cmd.Flags().StringVarP(&priorityName, "priority", "p", "info", "record priority (v|d|i|w|e|f)")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "record tag")
	cmd.Flags().StringVarP(&channelName, "buffer", "b", "main", "target channel (main|radio|events|system)")

	return cmd
}
