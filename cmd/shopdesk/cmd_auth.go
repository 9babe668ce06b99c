package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danghq/shopdesk/app/services"
)

// shopdesk login — sign in and persist the session.
var loginCmd = &cobra.Command{
	Use:   "login <email-or-phone> <password>",
	Short: "Sign in to the dashboard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		auth := services.NewAuthService()
		user, ok := auth.Login(cmd.Context(), args[0], args[1])
		if !ok {
			return fmt.Errorf("login failed: invalid credentials")
		}
		fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

// shopdesk logout — clear the persisted session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := services.NewAuthService().Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

// shopdesk whoami — show the current session, if any.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, ok := services.NewAuthService().Current()
		if !ok {
			fmt.Println("Not signed in.")
			return nil
		}
		role := "user"
		if user.IsAdmin() {
			role = "admin"
		}
		fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, role)
		return nil
	},
}
