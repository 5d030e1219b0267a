package cli

import (
	"strings"

	"freeflow-cli/internal/model"
	"freeflow-cli/internal/session"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Session commands",
	}
	cmd.AddCommand(newAuthLoginCmd(app))
	cmd.AddCommand(newAuthRegisterCmd(app))
	cmd.AddCommand(newAuthLogoutCmd(app))
	cmd.AddCommand(newAuthWhoamiCmd(app))
	return cmd
}

func newAuthLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient(app, nil)
			if err != nil {
				return writeErr(cmd, err)
			}

			res, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return writeErr(cmd, err)
			}

			sess := model.Session{
				UserID: res.UserID,
				Name:   res.Name,
				Email:  strings.TrimSpace(email),
			}
			s, err := session.DefaultStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(sess); err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "auth.login", res.UserID, sess.Email)
			return writeOut(cmd, app, map[string]any{"data": map[string]string{
				"user_id": res.UserID,
				"name":    res.Name,
			}})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAuthRegisterCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient(app, nil)
			if err != nil {
				return writeErr(cmd, err)
			}

			res, err := client.Register(cmd.Context(), name, email, password)
			if err != nil {
				return writeErr(cmd, err)
			}

			sess := model.Session{
				UserID: res.UserID,
				Name:   strings.TrimSpace(name),
				Email:  strings.TrimSpace(email),
			}
			s, err := session.DefaultStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(sess); err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "auth.register", res.UserID, sess.Email)
			return writeOut(cmd, app, map[string]any{"data": map[string]string{
				"user_id": res.UserID,
				"name":    sess.Name,
			}})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAuthLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.DefaultStore()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Clear(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"status": "logged_out"}})
		},
	}
}

func newAuthWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := loadSession()
			if err != nil {
				return writeErr(cmd, err)
			}
			if sess == nil {
				return writeErr(cmd, errLoggedOut)
			}
			return writeOut(cmd, app, map[string]any{"data": sess})
		},
	}
}
