package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	feedadapter "github.com/bnema/skillconnect-cli/internal/adapters/render/feed"
	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var errNotProgressOwner = errors.New("you can only change your own progress updates")

type progressFlags struct {
	content    string
	template   string
	completion string
	estimated  string
	public     bool
}

func (f *progressFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.content, "content", "", "What you learned or worked on")
	cmd.Flags().StringVar(&f.template, "template", "", "Template type, e.g. Course or Project")
	cmd.Flags().StringVar(&f.completion, "completion", "", "Completion as a fraction (0.4) or percentage (40%)")
	cmd.Flags().StringVar(&f.estimated, "estimated", "", "Estimated hours remaining")
	cmd.Flags().BoolVar(&f.public, "public", false, "Show the update to everyone")
}

// apply overlays the flags set on cmd onto payload.
func (f *progressFlags) apply(cmd *cobra.Command, payload *domain.ProgressPayload) error {
	changed := cmd.Flags().Changed
	if changed("content") {
		payload.Content = f.content
	}
	if changed("template") {
		payload.TemplateType = f.template
	}
	if changed("completion") {
		completion, err := parseCompletion(f.completion)
		if err != nil {
			return err
		}
		payload.Completion = completion
	}
	if changed("estimated") {
		hours, err := cast.ToFloat64E(strings.TrimSuffix(strings.TrimSpace(f.estimated), "h"))
		if err != nil {
			return fmt.Errorf("parse --estimated %q: %w", f.estimated, err)
		}
		payload.EstimatedTime = hours
	}
	if changed("public") {
		payload.Public = f.public
	}

	return nil
}

func newProgressCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track and share learning progress",
	}

	cmd.AddCommand(
		newProgressListCmd(app),
		newProgressCreateCmd(app),
		newProgressUpdateCmd(app),
		newProgressVisibilityCmd(app),
		newProgressDeleteCmd(app),
	)

	return cmd
}

func newProgressListCmd(app *app) *cobra.Command {
	var userID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List progress updates you can see, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			viewer := app.session.Get().UserID

			list := application.NewProgressFeed(app.client, app.order)
			if userID != "" {
				list = application.NewUserProgressList(app.client, domain.UserID(userID), app.order)
			}

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading progress updates...", func(ctx context.Context) error {
				return list.LoadAll(ctx, application.VisibleProgress(viewer))
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, list.Items())
			}
			rendered, renderErr := feedadapter.RenderProgress(list.Items(), app.renderOptions())
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Only list updates of this user ID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newProgressCreateCmd(app *app) *cobra.Command {
	var flags progressFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post a learning progress update",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.session.Get().Active() {
				return domain.ErrNoSession
			}

			var payload domain.ProgressPayload
			if err := flags.apply(cmd, &payload); err != nil {
				return err
			}

			list := application.NewProgressFeed(app.client, app.order)
			created, err := list.CreateAndPrepend(cmd.Context(), payload)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created progress update %s\n", created.ID)
			return err
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newProgressUpdateCmd(app *app) *cobra.Command {
	var flags progressFlags

	cmd := &cobra.Command{
		Use:   "update <update-id>",
		Short: "Change one of your progress updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := app.session.Get()
			if !session.Active() {
				return domain.ErrNoSession
			}

			current, err := app.client.GetProgressUpdate(cmd.Context(), domain.ProgressUpdateID(args[0]))
			if err != nil {
				return err
			}
			if !session.Owns(current.OwnerID()) {
				return errNotProgressOwner
			}

			payload := domain.ProgressPayload{
				UserID:        current.UserID,
				TemplateType:  current.TemplateType,
				Content:       current.Content,
				Completion:    current.Completion,
				EstimatedTime: current.EstimatedTime,
				Public:        current.Public,
			}
			if err := flags.apply(cmd, &payload); err != nil {
				return err
			}

			list := application.NewProgressFeed(app.client, app.order)
			updated, err := list.UpdateInPlace(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated progress update %s\n", updated.ID)
			return err
		},
	}

	flags.register(cmd)

	return cmd
}

func newProgressVisibilityCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "visibility <update-id> <public|private>",
		Short:     "Make a progress update public or private",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"public", "private"},
		RunE: func(cmd *cobra.Command, args []string) error {
			session := app.session.Get()
			if !session.Active() {
				return domain.ErrNoSession
			}

			public, err := parseVisibility(args[1])
			if err != nil {
				return err
			}

			list := application.NewUserProgressList(app.client, session.UserID, app.order)
			if err := list.LoadAll(cmd.Context(), nil); err != nil {
				return err
			}
			if _, ok := list.Get(args[0]); !ok {
				current, err := app.client.GetProgressUpdate(cmd.Context(), domain.ProgressUpdateID(args[0]))
				if err != nil {
					return err
				}
				if !session.Owns(current.OwnerID()) {
					return errNotProgressOwner
				}
			}

			updated, err := app.client.SetProgressVisibility(cmd.Context(), domain.ProgressUpdateID(args[0]), public)
			if err != nil {
				return err
			}
			list.Replace(updated)

			label := "private"
			if updated.Public {
				label = "public"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Progress update %s is now %s\n", updated.ID, label); err != nil {
				return err
			}
			rendered, renderErr := feedadapter.RenderProgress(list.Items(), app.renderOptions())
			return writeRendered(cmd, rendered, renderErr)
		},
	}
}

func newProgressDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <update-id>",
		Short: "Delete one of your progress updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.session.Get().Active() {
				return domain.ErrNoSession
			}

			list := application.NewProgressFeed(app.client, app.order)
			result, err := list.RemoveByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeRemoved(cmd, "progress update", args[0], result)
		},
	}
}

// parseCompletion accepts a fraction ("0.4"), a percentage ("40%") or a
// whole number above one ("40"), and returns a fraction.
func parseCompletion(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	percent := strings.HasSuffix(trimmed, "%")
	value, err := cast.ToFloat64E(strings.TrimSuffix(trimmed, "%"))
	if err != nil {
		return 0, fmt.Errorf("parse --completion %q: %w", raw, err)
	}
	if percent || value > 1 {
		value /= 100
	}

	return domain.ProgressPayload{Completion: value}.ClampedCompletion(), nil
}

func parseVisibility(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "public":
		return true, nil
	case "private":
		return false, nil
	}

	public, err := cast.ToBoolE(raw)
	if err != nil {
		return false, fmt.Errorf("visibility must be public or private, got %q", raw)
	}
	return public, nil
}
