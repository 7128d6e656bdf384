package commands

import (
	"os"

	"github.com/spf13/cobra"

	"wahactl/internal/render"
	"wahactl/internal/waha"
)

func contactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage WhatsApp contacts",
	}
	cmd.AddCommand(contactsListCmd(), contactsInfoCmd(), contactsCheckCmd(),
		contactsBlockCmd(), contactsUnblockCmd())
	return cmd
}

func contactsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.Contacts(cmd.Context(), session)
			if err != nil {
				return err
			}
			printListOr(res, printContacts)
			return nil
		},
	}
}

func contactsInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <contact_id>",
		Short: "Show one contact (e.g. 6281234567890@c.us)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.Contact(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			return nil
		},
	}
}

func contactsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <phone>",
		Short: "Check whether a phone number is registered on WhatsApp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.CheckContact(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			if obj, ok := res.Any().(map[string]any); ok {
				printExistence(os.Stdout, args[0], waha.Object(obj))
			}
			return nil
		},
	}
}

func contactsBlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block <contact_id>",
		Short: "Block a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.BlockContact(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			return nil
		},
	}
}

func contactsUnblockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unblock <contact_id>",
		Short: "Unblock a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.UnblockContact(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			return nil
		},
	}
}
