package cmd

import (
	"encoding/hex"
	"fmt"

	"liblog/pkg/log"

	"github.com/spf13/cobra"
)

func newEventCmd() *cobra.Command {
	var (
		tagID     uint32
		eventType int
		hexInput  bool
	)

	cmd := &cobra.Command{
		Use:   "event <payload>",
		Short: "Write a binary event record to the events channel",
		Long: `Event frames a binary event record (tag identifier plus raw payload,
optionally with a one-byte type discriminator) and delivers it to the
events channel. Event records bypass the reroute policy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupFromConfig(); err != nil {
				return err
			}

			payload := []byte(args[0])
			if hexInput {
				var err error
				payload, err = hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("decode hex payload: %w", err)
				}
			}

			var (
				n   int
				err error
			)
			if eventType >= 0 {
				if eventType > 0xff {
					return fmt.Errorf("event type %d out of range", eventType)
				}
				n, err = log.WriteTypedEvent(tagID, byte(eventType), payload)
			} else {
				n, err = log.WriteEvent(tagID, payload)
			}
			if err != nil {
				return err
			}
			cmd.Printf("wrote %d bytes to %s\n", n, log.ChannelEvents)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&tagID, "tag-id", 0, "4-byte event tag identifier")
	cmd.Flags().IntVar(&eventType, "type", -1, "one-byte type discriminator (-1 for untyped)")
	cmd.Flags().BoolVar(&hexInput, "hex", false, "interpret payload as hex bytes")
	cmd.MarkFlagRequired("tag-id")

	return cmd
}
