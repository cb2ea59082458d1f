package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secureapp/secureapp-cli/internal/client/cli"
)

// NewLoginCmd starts the interactive session at the sign-in view.
func NewLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in to the SecureApp server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.RunFrom(cmd.Context(), cli.RouteLogin, cli.NavContext{})
		},
	}
}

// NewRegisterCmd starts the interactive session at the registration view.
func NewRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a SecureApp account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.RunFrom(cmd.Context(), cli.RouteRegister, cli.NavContext{})
		},
	}
}

// NewVerifyCmd enters the one-time-code view directly. The pending identity
// normally travels one navigation hop from registration or login; here it
// arrives as a flag instead.
func NewVerifyCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an email address with a one-time code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			app.SeedVerification(email)
			return app.RunFrom(cmd.Context(), cli.RouteVerifyOtp, cli.NavContext{Email: email})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address awaiting verification")

	return cmd
}

// NewWhoamiCmd prints the authenticated profile and exits.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			profile, err := app.CurrentUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("not signed in: %w", err)
			}
			cmd.Printf("%s <%s>\n", profile.FirstName, profile.Email)
			cmd.Printf("Account ID: %s\n", profile.ID)
			if len(profile.Roles) > 0 {
				cmd.Printf("Roles: %v\n", profile.Roles)
			}
			return nil
		},
	}
}

// NewLogoutCmd clears the stored token pair.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			if err := app.Logout(); err != nil {
				return err
			}
			cmd.Println("Signed out.")
			return nil
		},
	}
}
