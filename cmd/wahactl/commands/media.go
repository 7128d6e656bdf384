package commands

import (
	"os"

	"github.com/spf13/cobra"

	"wahactl/internal/render"
	"wahactl/internal/waha"
)

// media <type> <chat_id> <url>: send media by URL. Video and voice always ask
// the gateway to transcode.
func mediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media <image|file|video|voice> <chat_id> <url>",
		Short: "Send media from a URL",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := waha.ParseMediaKind(args[0])
			if err != nil {
				return err
			}
			res, err := gateway.SendMedia(cmd.Context(), kind, waha.MediaRequest{
				ChatID: args[1],
				File: waha.Attachment{
					URL:      args[2],
					Mimetype: mimetype,
					Filename: filename,
				},
				Session: session,
				Caption: caption,
				ReplyTo: replyTo,
				Convert: kind.NeedsConvert(),
			})
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			return nil
		},
	}
	cmd.Flags().StringVarP(&caption, "caption", "c", "", "caption text")
	cmd.Flags().StringVarP(&replyTo, "reply-to", "r", "", "message ID to reply to")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "filename override")
	cmd.Flags().StringVarP(&mimetype, "mimetype", "m", "", "mimetype override")
	return cmd
}
