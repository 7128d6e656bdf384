package commands

import (
	"os"

	"github.com/spf13/cobra"

	"wahactl/internal/render"
)

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage WhatsApp groups",
	}
	cmd.AddCommand(groupsListCmd(), groupsInfoCmd(), groupsParticipantsCmd(), groupsCreateCmd())
	return cmd
}

func groupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.Groups(cmd.Context(), session)
			if err != nil {
				return err
			}
			printListOr(res, printGroups)
			return nil
		},
	}
}

func groupsInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <group_id>",
		Short: "Show one group (e.g. 120363012345678901@g.us)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.Group(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			return nil
		},
	}
}

func groupsParticipantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participants <group_id>",
		Short: "List a group's participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.GroupParticipants(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			printListOr(res, printParticipants)
			return nil
		},
	}
}

func groupsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <participant>...",
		Short: "Create a group with the given participant chat IDs",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.CreateGroup(cmd.Context(), session, args[0], args[1:])
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			return nil
		},
	}
}
