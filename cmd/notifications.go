package cmd

import (
	"context"
	"fmt"

	feedadapter "github.com/bnema/skillconnect-cli/internal/adapters/render/feed"
	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "Read and manage your notifications",
	}

	cmd.AddCommand(
		newNotificationsListCmd(app),
		newNotificationsCountCmd(app),
		newNotificationsDismissCmd(app),
		newNotificationsSendCmd(app),
	)

	return cmd
}

func newNotificationsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var inbox application.Inbox
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading notifications...", func(ctx context.Context) error {
				var err error
				inbox, err = app.notifications.Inbox(ctx)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, inbox)
			}
			rendered, renderErr := feedadapter.RenderNotifications(inbox, app.renderOptions())
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newNotificationsCountCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := app.notifications.Count(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)
			return err
		},
	}
}

func newNotificationsDismissCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dismiss <notification-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a notification",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.notifications.Dismiss(cmd.Context(), domain.NotificationID(args[0]))
			if err != nil {
				return err
			}

			return writeRemoved(cmd, "notification", args[0], result)
		},
	}
}

func newNotificationsSendCmd(app *app) *cobra.Command {
	var payload domain.NotificationPayload
	var to string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification to another user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.session.Get().Active() {
				return domain.ErrNoSession
			}

			payload.UserID = domain.UserID(to)
			created, err := app.notifications.Notify(cmd.Context(), payload)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Sent notification %s to %s\n", created.ID, to)
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient user ID")
	cmd.Flags().StringVar(&payload.Title, "title", "", "Notification title")
	cmd.Flags().StringVar(&payload.Message, "message", "", "Notification message")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
