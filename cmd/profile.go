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

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit profiles",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileListCmd(app),
		newProfileUpdateCmd(app),
		newProfileImageCmd(app, "avatar", "Upload a new profile image", application.UploadProfileImage),
		newProfileImageCmd(app, "cover", "Upload a new cover image", application.UploadCoverImage),
		newProfileDeleteCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [user-id]",
		Short: "Show a profile; your own when no user is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userID domain.UserID
			if len(args) == 1 {
				userID = domain.UserID(args[0])
			}

			var profile application.Profile
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading profile...", func(ctx context.Context) error {
				var err error
				profile, err = app.profiles.Profile(ctx, userID)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, profile)
			}
			rendered, renderErr := feedadapter.RenderProfile(profile, app.renderOptions())
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SkillConnect users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := app.client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, users)
			}

			out := cmd.OutOrStdout()
			for _, user := range users {
				if _, err := fmt.Fprintf(out, "%s\t%s\t@%s\n", user.ID, user.DisplayName(), user.Username); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var firstName, lastName, email, contact, bio, address, public string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change your profile details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update application.ProfileUpdateCommand
			changed := cmd.Flags().Changed
			for flag, target := range map[string]struct {
				value string
				dst   **string
			}{
				"first-name": {firstName, &update.FirstName},
				"last-name":  {lastName, &update.LastName},
				"email":      {email, &update.Email},
				"contact":    {contact, &update.ContactNumber},
				"bio":        {bio, &update.Bio},
				"address":    {address, &update.Address},
			} {
				if changed(flag) {
					value := target.value
					*target.dst = &value
				}
			}
			if changed("public") {
				value, err := cast.ToBoolE(strings.TrimSpace(public))
				if err != nil {
					return fmt.Errorf("parse --public %q: %w", public, err)
				}
				update.PublicStatus = &value
			}

			user, err := app.profiles.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated profile of %s\n", user.DisplayName())
			return err
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact number")
	cmd.Flags().StringVar(&bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&public, "public", "", "Whether the profile is public (true/false)")

	return cmd
}

func newProfileImageCmd(app *app, use string, short string, kind application.UploadKind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <image-file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, file, err := openAsset(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			var user domain.User
			err = runUploadProgress(cmd.Context(), cmd.ErrOrStderr(), "Uploading "+asset.Name, func(ctx context.Context, onProgress func(float64)) error {
				var err error
				switch kind {
				case application.UploadCoverImage:
					user, err = app.profiles.ChangeCoverImage(ctx, asset, onProgress)
				default:
					user, err = app.profiles.ChangeProfileImage(ctx, asset, onProgress)
				}
				return err
			})
			if err != nil {
				return err
			}

			url := user.ProfileImageURL
			if kind == application.UploadCoverImage {
				url = app.session.CoverImageURL(user.ID)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", use, url)
			return err
		},
	}
}

func newProfileDeleteCmd(app *app) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account and sign out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return errors.New("refusing to delete the account without --yes")
			}

			if err := app.authService.DeleteAccount(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Account deleted")
			return err
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm account deletion")

	return cmd
}
