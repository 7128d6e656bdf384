package commands

import (
	"os"

	"github.com/spf13/cobra"

	"wahactl/internal/render"
	"wahactl/internal/waha"
)

// send <chat_id> <text>: one text message, optionally as a reply.
func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <chat_id> <text>",
		Short: "Send a text message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.SendText(cmd.Context(), waha.TextRequest{
				ChatID:  args[0],
				Text:    args[1],
				Session: session,
				ReplyTo: replyTo,
			})
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			return nil
		},
	}
	cmd.Flags().StringVarP(&replyTo, "reply-to", "r", "", "message ID to reply to")
	return cmd
}
