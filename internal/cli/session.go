package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblesolver/internal/api/request"
	"github.com/mcoot/scrabblesolver/internal/api/response"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Assistant session commands (requires a server)",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionRackCmd())
	cmd.AddCommand(newSessionCursorCmd())
	cmd.AddCommand(newSessionTypeCmd())
	cmd.AddCommand(newSessionClearCmd())
	cmd.AddCommand(newSessionWildcardsCmd())
	cmd.AddCommand(newSessionSolveCmd())
	cmd.AddCommand(newSessionAcceptCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func sessionPath(id string, suffix ...string) string {
	path := "/api/v1/sessions/" + id
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}

func printSession(cmd *cobra.Command, s response.Session) {
	NewOutput(cmd.OutOrStdout(), cfg.Output).Print(s)
}

func atoiArgs(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = n
	}
	return out, nil
}

func newSessionCreateCmd() *cobra.Command {
	var localeCode string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a session with an empty board",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Post(cmd.Context(), "/api/v1/sessions", request.CreateSessionRequest{Locale: localeCode}, &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&localeCode, "locale", "l", "it", "Locale code")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Get(cmd.Context(), sessionPath(args[0]), &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}
}

func newSessionRackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rack <id> <tiles>",
		Short: "Set the rack, '*' for a wildcard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Put(cmd.Context(), sessionPath(args[0], "rack"), request.SetRackRequest{Rack: args[1]}, &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}
}

func newSessionCursorCmd() *cobra.Command {
	var vertical bool

	cmd := &cobra.Command{
		Use:   "cursor <id> <row> <col>",
		Short: "Move the typing cursor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := atoiArgs(args[1:])
			if err != nil {
				return err
			}
			req := request.CursorRequest{Row: pos[0], Col: pos[1], Vertical: vertical}

			var result response.Session
			if err := client.Put(cmd.Context(), sessionPath(args[0], "cursor"), req, &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&vertical, "vertical", false, "Type top to bottom")

	return cmd
}

func newSessionTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <id> <letters>",
		Short: "Write letters from the cursor, '*X' for X played with a wildcard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Post(cmd.Context(), sessionPath(args[0], "type"), request.TypeRequest{Text: args[1]}, &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}
}

func newSessionClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <id> <row> <col>",
		Short: "Remove the letter from a cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := atoiArgs(args[1:]); err != nil {
				return err
			}
			var result response.Session
			if err := client.Delete(cmd.Context(), sessionPath(args[0], "cells", args[1], args[2]), &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}
}

func newSessionWildcardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wildcards <id>",
		Short: "Toggle showing wildcard tiles as '*' or as their letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Post(cmd.Context(), sessionPath(args[0], "wildcards", "toggle"), nil, &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}
}

func newSessionSolveCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "solve <id>",
		Short: "Search placements for the session rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Post(cmd.Context(), sessionPath(args[0], "solve"), request.SolveSessionRequest{Limit: limit}, &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum placements to keep (0 for all)")

	return cmd
}

func newSessionAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <id> <n>",
		Short: "Play result n (1 is the best) onto the board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := atoiArgs(args[1:])
			if err != nil {
				return err
			}
			var result response.Session
			if err := client.Post(cmd.Context(), sessionPath(args[0], "accept"), request.AcceptRequest{Index: n[0] - 1}, &result); err != nil {
				return err
			}
			printSession(cmd, result)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), sessionPath(args[0]), nil); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).PrintMessage("Session deleted")
			return nil
		},
	}
}
