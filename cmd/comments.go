package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	feedadapter "github.com/bnema/skillconnect-cli/internal/adapters/render/feed"
	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

var (
	errNotCommentOwner = errors.New("you can only change your own comments")
	errEmptyComment    = errors.New("comment text is required")
)

func newCommentsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment"},
		Short:   "Read and write comments on posts",
	}

	cmd.AddCommand(
		newCommentsListCmd(app),
		newCommentsAddCmd(app),
		newCommentsEditCmd(app),
		newCommentsDeleteCmd(app),
	)

	return cmd
}

func newCommentsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <post-id>",
		Short: "List the comments on a post, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := application.NewPostCommentList(app.client, domain.PostID(args[0]), app.order)
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading comments...", func(ctx context.Context) error {
				return list.LoadAll(ctx, application.LiveComments)
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, list.Items())
			}
			rendered, renderErr := feedadapter.RenderComments(list.Items(), app.renderOptions())
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newCommentsAddCmd(app *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "add <post-id>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.session.Get().Active() {
				return domain.ErrNoSession
			}
			content := strings.TrimSpace(text)
			if content == "" {
				return errEmptyComment
			}

			list := application.NewPostCommentList(app.client, domain.PostID(args[0]), app.order)
			created, err := list.CreateAndPrepend(cmd.Context(), domain.CommentPayload{Content: content})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added comment %s\n", created.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Comment text")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newCommentsEditCmd(app *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "edit <comment-id>",
		Short: "Change the text of one of your comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := app.session.Get()
			if !session.Active() {
				return domain.ErrNoSession
			}
			content := strings.TrimSpace(text)
			if content == "" {
				return errEmptyComment
			}

			current, err := app.client.GetComment(cmd.Context(), domain.CommentID(args[0]))
			if err != nil {
				return err
			}
			if !session.Owns(current.OwnerID()) {
				return errNotCommentOwner
			}

			list := application.NewPostCommentList(app.client, current.PostID, app.order)
			updated, err := list.UpdateInPlace(cmd.Context(), args[0], domain.CommentPayload{
				UserID:  current.OwnerID(),
				Content: content,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated comment %s\n", updated.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "New comment text")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newCommentsDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.session.Get().Active() {
				return domain.ErrNoSession
			}

			list := application.NewPostCommentList(app.client, "", app.order)
			result, err := list.RemoveByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeRemoved(cmd, "comment", args[0], result)
		},
	}
}
