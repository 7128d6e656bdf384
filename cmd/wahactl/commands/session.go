package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wahactl/internal/render"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage gateway sessions",
	}
	cmd.AddCommand(sessionListCmd(), sessionInfoCmd(),
		sessionActionCmd("start", "Start a session"),
		sessionActionCmd("stop", "Stop a session"),
		sessionActionCmd("restart", "Restart a session"),
		sessionActionCmd("logout", "Log a session out of WhatsApp"))
	return cmd
}

func sessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.Sessions(cmd.Context())
			if err != nil {
				return err
			}
			printListOr(res, printSessions)
			return nil
		},
	}
}

func sessionInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.Session(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			return nil
		},
	}
}

func sessionActionCmd(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gateway.SessionAction(cmd.Context(), args[0], verb)
			if err != nil {
				return err
			}
			render.JSON(os.Stdout, res.Any())
			fmt.Printf("  Session '%s' -> %s\n", args[0], verb)
			return nil
		},
	}
}
