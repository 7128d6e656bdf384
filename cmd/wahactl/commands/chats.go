package commands

import (
	"github.com/spf13/cobra"

	"wahactl/internal/waha"
)

var (
	limit         int
	offset        int
	downloadMedia bool
)

func chatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "List chats and messages",
	}
	cmd.PersistentFlags().IntVarP(&limit, "limit", "l", 20, "max items to fetch")
	cmd.PersistentFlags().IntVar(&offset, "offset", 0, "items to skip")
	cmd.AddCommand(chatsListCmd(), chatsOverviewCmd(), chatsMessagesCmd())
	return cmd
}

func page() waha.Page {
	return waha.Page{Limit: limit, Offset: offset}
}

func chatsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List chats, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.Chats(cmd.Context(), session, page())
			if err != nil {
				return err
			}
			printListOr(res, printChats)
			return nil
		},
	}
}

func chatsOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "List chats with a last-message preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.ChatsOverview(cmd.Context(), session, page())
			if err != nil {
				return err
			}
			printListOr(res, printChatsOverview)
			return nil
		},
	}
}

func chatsMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages <chat_id>",
		Short: "Show a chat's messages, oldest of the page first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.ChatMessages(cmd.Context(), session, args[0], page(), downloadMedia)
			if err != nil {
				return err
			}
			printListOr(res, printMessages)
			return nil
		},
	}
	cmd.Flags().BoolVar(&downloadMedia, "download-media", false, "ask the gateway to download media")
	return cmd
}
