package commands

import (
	"github.com/spf13/cobra"

	"wahactl/internal/app"
	"wahactl/internal/waha"
)

var (
	session string
	gateway *waha.Client

	replyTo  string
	caption  string
	filename string
	mimetype string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "wahactl",
		Short:        "Command-line client for a WAHA WhatsApp gateway",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load()
			if err != nil {
				return err
			}
			gateway = waha.New(cfg.BaseURL, cfg.APIKey)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&session, "session", "s", "default", "gateway session name")

	root.AddCommand(groupsCmd(), contactsCmd(), chatsCmd(), sendCmd(), mediaCmd(), sessionCmd())

	// Connections are released on every exit path, errors included.
	defer func() {
		if gateway != nil {
			gateway.Close()
		}
	}()
	return root.Execute()
}
