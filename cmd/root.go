package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "sc",
		Short:         "SkillConnect CLI (sc): posts, learning progress and profiles from the terminal",
		Long:          "sc talks to the SkillConnect API: sign in, browse and publish posts and learning progress updates, follow people, read notifications and manage your profile. The signed-in session is shared by every sc process of the same user.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and session activity to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.logLevel.Set(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newWhoamiCmd(app),
		newSessionCmd(app),
		newPostsCmd(app),
		newCommentsCmd(app),
		newProgressCmd(app),
		newNotificationsCmd(app),
		newFollowCmd(app),
		newUnfollowCmd(app),
		newProfileCmd(app),
	)

	return rootCmd
}
