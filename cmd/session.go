package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the session shared by sc processes",
	}

	cmd.AddCommand(newSessionWatchCmd(app))

	return cmd
}

func newSessionWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print session changes made by other sc processes until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			unsubscribe := app.session.Subscribe(func(change domain.SessionChange) {
				_, _ = fmt.Fprintln(out, formatSessionChange(change))
			})
			defer unsubscribe()

			current := app.session.Get()
			if current.Active() {
				_, _ = fmt.Fprintf(out, "watching session of %s\n", current.UserID)
			} else {
				_, _ = fmt.Fprintln(out, "watching session (signed out)")
			}

			return app.session.Watch(ctx)
		},
	}
}

func formatSessionChange(change domain.SessionChange) string {
	switch change.Key {
	case domain.SessionKeyUserID:
		if change.NewValue == "" {
			return fmt.Sprintf("signed out (was %s)", change.OldValue)
		}
		return fmt.Sprintf("signed in as %s", change.NewValue)
	case domain.SessionKeyToken:
		if change.NewValue == "" {
			return "token removed"
		}
		return "token updated"
	case domain.SessionKeyCoverImage:
		return fmt.Sprintf("cover image of %s: %s", change.UserID, valueOrNone(change.NewValue))
	default:
		return fmt.Sprintf("%s: %s", change.Key, valueOrNone(change.NewValue))
	}
}

func valueOrNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}
