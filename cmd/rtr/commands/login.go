package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiKey   string
		customer string
		ote      bool
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store API credentials",
		Long:  "Verify an API key against the API and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				key, err := promptAPIKey(cmd)
				if err != nil {
					return err
				}

				apiKey = key
			}

			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			config := loadConfig()
			config.APIKey = apiKey

			if customer != "" {
				config.Customer = customer
			}

			if cmd.Flags().Changed("ote") {
				config.OTE = ote
			}

			if !noVerify {
				err := verifyCredentials(cmd, config)
				if err != nil {
					return err
				}
			}

			err := updateConfigFile(func(stored *Config) error {
				stored.APIKey = config.APIKey
				stored.Customer = config.Customer
				stored.OTE = config.OTE

				return nil
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Credentials stored")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted when omitted)")
	cmd.Flags().StringVar(&customer, "handle", "", "customer handle to store")
	cmd.Flags().BoolVar(&ote, "test-environment", false, "store credentials for the test environment")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "store credentials without contacting the API")

	return cmd
}

func promptAPIKey(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API key: ")

	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	return strings.TrimSpace(string(key)), nil
}

// verifyCredentials performs a cheap authenticated request.
func verifyCredentials(cmd *cobra.Command, config *Config) error {
	client, err := newAPIClient(cmd, config)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	if config.Customer != "" {
		_, err = client.Customers().Credit(ctx)
	} else {
		_, err = client.Providers().List(ctx, rtr.NewListQuery().WithLimit(1))
	}

	if err != nil {
		return fmt.Errorf("failed to verify credentials: %w", err)
	}

	return nil
}
