package cmd

import (
	"context"
	"errors"
	"fmt"

	feedadapter "github.com/bnema/skillconnect-cli/internal/adapters/render/feed"
	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errNotPostOwner = errors.New("you can only change your own posts")

func newPostsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"post"},
		Short:   "Browse and publish posts",
	}

	cmd.AddCommand(
		newPostsListCmd(app),
		newPostsShowCmd(app),
		newPostsCreateCmd(app),
		newPostsEditCmd(app),
		newPostsDeleteCmd(app),
		newPostsLikeCmd(app),
		newPostsUnlikeCmd(app),
		newPostsLikesCmd(app),
	)

	return cmd
}

func newPostsListCmd(app *app) *cobra.Command {
	var userID string
	var mine bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mine {
				userID = string(app.session.Get().UserID)
				if userID == "" {
					return domain.ErrNoSession
				}
			}

			list := application.NewPostFeed(app.client, app.order)
			if userID != "" {
				list = application.NewUserPostList(app.client, domain.UserID(userID), app.order)
			}

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading posts...", func(ctx context.Context) error {
				return list.LoadAll(ctx, nil)
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, list.Items())
			}
			rendered, renderErr := feedadapter.RenderPosts(list.Items(), app.renderOptions())
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Only list posts of this user ID")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only list your own posts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")
	cmd.MarkFlagsMutuallyExclusive("user", "mine")

	return cmd
}

func newPostsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show one post and its media",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := app.client.GetPost(cmd.Context(), domain.PostID(args[0]))
			if err != nil {
				return err
			}

			if len(post.MediaTypes) == 0 {
				media := application.NewPostMediaList(app.client, post.ID)
				if err := media.LoadAll(cmd.Context(), nil); err != nil {
					return err
				}
				for _, item := range media.Items() {
					post.MediaTypes = append(post.MediaTypes, domain.Media{ID: string(item.ID), Type: item.Type, URL: item.URL})
				}
			}

			if asJSON {
				return writeJSON(cmd, post)
			}
			rendered, renderErr := feedadapter.RenderPosts([]domain.Post{post}, app.renderOptions())
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newPostsCreateCmd(app *app) *cobra.Command {
	var caption string
	var files []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a post with optional images or videos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.session.Get().Active() {
				return domain.ErrNoSession
			}

			payload := domain.PostPayload{Caption: caption}
			for _, path := range files {
				uploaded, err := uploadFile(cmd, app, application.UploadPostMedia, path)
				if err != nil {
					return err
				}
				payload.MediaTypes = append(payload.MediaTypes, domain.Media{Type: mediaKind(path), URL: uploaded.URL})
			}

			list := application.NewPostFeed(app.client, app.order)
			post, err := list.CreateAndPrepend(cmd.Context(), payload)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created post %s\n", post.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&caption, "caption", "", "Post caption")
	cmd.Flags().StringArrayVar(&files, "media", nil, "Image or video file to attach (repeatable)")
	_ = cmd.MarkFlagRequired("caption")

	return cmd
}

func newPostsEditCmd(app *app) *cobra.Command {
	var caption string

	cmd := &cobra.Command{
		Use:   "edit <post-id>",
		Short: "Change the caption of one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := app.session.Get()
			if !session.Active() {
				return domain.ErrNoSession
			}

			current, err := app.client.GetPost(cmd.Context(), domain.PostID(args[0]))
			if err != nil {
				return err
			}
			if !session.Owns(current.OwnerID()) {
				return errNotPostOwner
			}

			list := application.NewPostFeed(app.client, app.order)
			updated, err := list.UpdateInPlace(cmd.Context(), args[0], domain.PostPayload{
				UserID:     current.OwnerID(),
				Caption:    caption,
				MediaTypes: current.MediaTypes,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated post %s\n", updated.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&caption, "caption", "", "New caption")
	_ = cmd.MarkFlagRequired("caption")

	return cmd
}

func newPostsDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.session.Get().Active() {
				return domain.ErrNoSession
			}

			list := application.NewPostFeed(app.client, app.order)
			result, err := list.RemoveByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeRemoved(cmd, "post", args[0], result)
		},
	}
}
