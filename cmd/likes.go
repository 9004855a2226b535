package cmd

import (
	"fmt"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPostsLikeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.likes.Like(cmd.Context(), domain.PostID(args[0]))
			if err != nil {
				return err
			}

			if !result.Created {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "You already like post %s\n", args[0])
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Liked post %s\n", args[0])
			return err
		},
	}
}

func newPostsUnlikeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unlike <post-id>",
		Short: "Remove your like from a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.likes.Unlike(cmd.Context(), domain.PostID(args[0]))
			if err != nil {
				return err
			}

			if result.AlreadyGone {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "You did not like post %s\n", args[0])
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Unliked post %s\n", args[0])
			return err
		},
	}
}

func newPostsLikesCmd(app *app) *cobra.Command {
	var asJSON bool
	var userID string

	cmd := &cobra.Command{
		Use:   "likes [post-id]",
		Short: "Show who liked a post, or the posts a user liked",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				likes, err := app.likes.LikedBy(cmd.Context(), domain.UserID(userID))
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, likes)
				}
				for _, like := range likes {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), like.LikedPostID()); err != nil {
						return err
					}
				}
				return nil
			}

			likes, err := app.likes.Likes(cmd.Context(), domain.PostID(args[0]))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, likes.Likes)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "likes: %d\n", likes.Count()); err != nil {
				return err
			}
			for _, like := range likes.Likes {
				name := like.User.Username
				if name == "" {
					name = string(like.OwnerID())
				}
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			if likes.ViewerLike != nil {
				_, err = fmt.Fprintln(out, "You like this post")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "List the posts this user ID liked (default: you)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}
