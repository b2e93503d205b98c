package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wordnik/config"
	"github.com/s0up4200/wordnik/wordnik"
)

var showToken bool

// accountCmd groups the account commands
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Inspect the API key and the Wordnik account",
}

var accountStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status and remaining quota of the API key",
	Args:  cobra.NoArgs,
	RunE: runWithParams(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		return client.APITokenStatus(ctx, params)
	}),
}

var accountUserCmd = &cobra.Command{
	Use:   "user",
	Short: "Show the logged in user",
	Args:  cobra.NoArgs,
	RunE: runWithParams(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		if err := ensureLogin(ctx); err != nil {
			return nil, err
		}
		return client.User(ctx, params)
	}),
}

var accountListsCmd = &cobra.Command{
	Use:   "lists",
	Short: "List the word lists of the logged in user",
	Args:  cobra.NoArgs,
	RunE: runWithParams(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		if err := ensureLogin(ctx); err != nil {
			return nil, err
		}
		return client.WordLists(ctx, params)
	}),
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with the configured username and password",
	Long: `Log in with wordnik.username and wordnik.password (or WORDNIK_USERNAME and
WORDNIK_PASSWORD). The password is prompted for when it is not configured.

With --show-token the session token is printed so it can be reused through
wordnik.auth_token or WORDNIK_AUTH_TOKEN.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	accountCmd.AddCommand(accountStatusCmd)
	accountCmd.AddCommand(accountUserCmd)
	accountCmd.AddCommand(accountListsCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(loginCmd)
	summaries[accountListsCmd] = summarizeWordLists

	loginCmd.Flags().BoolVar(&showToken, "show-token", false, "print the session token")
}

func runLogin(cmd *cobra.Command, args []string) error {
	result, err := authenticate(cmd.Context())
	if err != nil {
		return err
	}

	var token wordnik.AuthToken
	if err := wordnik.Decode(result, &token); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Logged in as %s (user id %d)\n", cfg.Wordnik.Username, token.UserID)
	if showToken {
		fmt.Fprintln(out, token.Token)
	}
	return nil
}

// ensureLogin authenticates unless a session token is already present
func ensureLogin(ctx context.Context) error {
	if client.Authenticated() {
		return nil
	}
	_, err := authenticate(ctx)
	return err
}

func authenticate(ctx context.Context) (wordnik.JSON, error) {
	if !cfg.Wordnik.HasCredentials() {
		return nil, fmt.Errorf("wordnik.username must be set (or %s_USERNAME) for account commands", config.EnvPrefix)
	}

	username, password := cfg.Wordnik.Username, cfg.Wordnik.Password
	if password == "" {
		var err error
		password, err = promptPassword(username)
		if err != nil {
			return nil, fmt.Errorf("wordnik.password is not set and it cannot be prompted for: %w", err)
		}
	}

	return client.Authenticate(ctx, username, password)
}
