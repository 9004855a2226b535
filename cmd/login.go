package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	authadapter "github.com/bnema/skillconnect-cli/internal/adapters/auth"
	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var username string
	var password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with username and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if passwordStdin {
				value, err := readSecretLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				password = value
			}
			if password == "" {
				return errors.New("password is required (use --password or --password-stdin)")
			}

			session, err := app.authService.Login(cmd.Context(), domain.Credentials{Username: username, Password: password})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", session.UserID)
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("username")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	cmd.AddCommand(newLoginGoogleCmd(app))

	return cmd
}

func newLoginGoogleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "google",
		Short: "Sign in with Google through the browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := authadapter.NewState()
			if err != nil {
				return fmt.Errorf("generate login state: %w", err)
			}

			server, err := authadapter.StartCallbackServer(app.redirectLogin.ListenAddr, state)
			if err != nil {
				return fmt.Errorf("start callback server: %w", err)
			}

			authURL, err := authadapter.BuildAuthorizationURL(app.client.BaseURL, server.RedirectURI(), state)
			if err != nil {
				_ = server.Close()
				return fmt.Errorf("build authorization url: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to sign in:\n%s\n", authURL)

			result, err := server.Wait(cmd.Context(), app.redirectLogin.Timeout)
			if err != nil {
				return fmt.Errorf("wait for login callback: %w", err)
			}

			session, err := app.authService.AcceptRedirect(cmd.Context(), result.UserID, result.Token, result.ProfileImageURL)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", session.UserID)
			return err
		},
	}
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out on this machine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.authService.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}

func newRegisterCmd(app *app) *cobra.Command {
	var input application.RegisterCommand
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a SkillConnect account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if passwordStdin {
				value, err := readSecretLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				input.Password = value
			}

			user, err := app.authService.Register(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s). Run `sc login -u %s` to sign in.\n", user.Username, user.ID, user.Username)
			return err
		},
	}

	cmd.Flags().StringVarP(&input.Username, "username", "u", "", "Username")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "Last name")
	_ = cmd.MarkFlagRequired("username")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.session.Get()
			if !session.Active() {
				return domain.ErrNoSession
			}

			if asJSON {
				return writeJSON(cmd, struct {
					UserID    domain.UserID `json:"userId"`
					UserImage string        `json:"userImage,omitempty"`
				}{UserID: session.UserID, UserImage: session.CachedAvatarURL})
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "user: %s\n", session.UserID)
			if session.CachedAvatarURL != "" {
				_, _ = fmt.Fprintf(out, "avatar: %s\n", session.CachedAvatarURL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func readSecretLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
