package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	Long: `Verifies credentials against the local account store and persists
the session, so subsequent commands run as that user. The user's sheet
routing is attached to every workflow trigger.

Examples:
  brandforge login --username maya --password s3cret
  brandforge login                 # prompts for both`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

var (
	loginUsername string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if authManager == nil {
		return errors.New("auth service not configured")
	}

	username := loginUsername
	password := loginPassword
	reader := bufio.NewReader(cmd.InOrStdin())
	if username == "" {
		cmd.Print("Username: ")
		input, _ := reader.ReadString('\n')
		username = strings.TrimSpace(input)
	}
	if password == "" {
		cmd.Print("Password: ")
		input, _ := reader.ReadString('\n')
		password = strings.TrimSpace(input)
	}

	user, err := authManager.Login(context.Background(), username, password)
	if err != nil {
		return err
	}
	cmd.Printf("Logged in as %s.\n", user.Username)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if authManager == nil {
		return errors.New("auth service not configured")
	}
	if err := authManager.Logout(context.Background()); err != nil {
		return err
	}
	cmd.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if authManager == nil {
		return errors.New("auth service not configured")
	}
	user, err := authManager.Current(context.Background())
	if errors.Is(err, domain.ErrNoSession) {
		cmd.Println("Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}
	cmd.Printf("%s", user.Username)
	if user.Name != "" {
		cmd.Printf(" (%s)", user.Name)
	}
	if user.Role != "" {
		cmd.Printf(" [%s]", user.Role)
	}
	cmd.Println()
	return nil
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage dashboard accounts",
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new account",
	Long: `Creates an account in the local store and fires the user-created
notification webhook. Sheet routing flags point the new user's results
at their own spreadsheet tabs; unset fields fall back to the operator
defaults.`,
	RunE: runUsersCreate,
}

var (
	createUsername      string
	createPassword      string
	createName          string
	createEmail         string
	createRole          string
	createSpreadsheetID string
)

func init() {
	usersCreateCmd.Flags().StringVarP(&createUsername, "username", "u", "", "Account username (required)")
	usersCreateCmd.Flags().StringVarP(&createPassword, "password", "p", "", "Account password (required)")
	usersCreateCmd.Flags().StringVar(&createName, "name", "", "Display name")
	usersCreateCmd.Flags().StringVar(&createEmail, "email", "", "Email address")
	usersCreateCmd.Flags().StringVar(&createRole, "role", "", "Role label, e.g. editor")
	usersCreateCmd.Flags().StringVar(&createSpreadsheetID, "spreadsheet", "", "User's own spreadsheet id")

	usersCmd.AddCommand(usersCreateCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersCreate(cmd *cobra.Command, _ []string) error {
	if authManager == nil {
		return errors.New("auth service not configured")
	}
	if createUsername == "" || createPassword == "" {
		return errors.New("--username and --password are required")
	}

	user := domain.User{
		Username: createUsername,
		Password: createPassword,
		Name:     createName,
		Email:    createEmail,
		Role:     createRole,
		Sheets:   domain.SheetConfig{SpreadsheetID: createSpreadsheetID},
	}
	if err := authManager.CreateUser(context.Background(), user); err != nil {
		return err
	}
	cmd.Printf("Created user %s.\n", createUsername)
	return nil
}
