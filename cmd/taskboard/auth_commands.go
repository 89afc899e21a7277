package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// login
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with the demo credentials",
	Long: `Log in with the demo credentials.

The board ships with a single demo account. Pass --remember to stay
logged in across sessions.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var (
	loginEmail    string
	loginPassword string
	loginRemember bool
)

// logout
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	loginCmd.Flags().BoolVar(&loginRemember, "remember", false, "Stay logged in across sessions")
}

func runLogin(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	if loginEmail == "" {
		return fmt.Errorf("email is required")
	}

	password := loginPassword
	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	if !store.Login(loginEmail, password, loginRemember) {
		return fmt.Errorf("invalid credentials")
	}

	fmt.Printf("Logged in as %s\n", loginEmail)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	store.Logout()
	fmt.Println("Logged out")
	return nil
}
