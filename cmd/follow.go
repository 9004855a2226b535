package cmd

import (
	"fmt"

	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFollowCmd(app *app) *cobra.Command {
	var toggle bool
	var status bool

	cmd := &cobra.Command{
		Use:   "follow <user-id>",
		Short: "Follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.UserID(args[0])

			if status {
				following, err := app.follows.IsFollowing(cmd.Context(), target)
				if err != nil {
					return err
				}
				label := "not following"
				if following {
					label = "following"
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", label, target)
				return err
			}

			var result application.FollowResult
			var err error
			if toggle {
				result, err = app.follows.Toggle(cmd.Context(), target)
			} else {
				result, err = app.follows.Follow(cmd.Context(), target)
			}
			if err != nil {
				return err
			}

			return writeFollowResult(cmd, target, result)
		},
	}

	cmd.Flags().BoolVar(&toggle, "toggle", false, "Unfollow instead when already following")
	cmd.Flags().BoolVar(&status, "status", false, "Only report whether you follow the user")
	cmd.MarkFlagsMutuallyExclusive("toggle", "status")

	return cmd
}

func newUnfollowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <user-id>",
		Short: "Stop following a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.UserID(args[0])
			result, err := app.follows.Unfollow(cmd.Context(), target)
			if err != nil {
				return err
			}

			return writeFollowResult(cmd, target, result)
		},
	}
}

func writeFollowResult(cmd *cobra.Command, target domain.UserID, result application.FollowResult) error {
	if result.Message != "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return err
	}

	verb := "Unfollowed"
	if result.Following {
		verb = "Following"
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, target)
	return err
}
