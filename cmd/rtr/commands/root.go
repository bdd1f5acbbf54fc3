package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the rtr command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rtr",
		Short: "Realtime Register API CLI",
		Long: `A command-line interface for the Realtime Register (yoursrs) API.

This CLI provides access to domains, contacts, DNS zones, SSL certificates,
processes, notifications and billing of a reseller account.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.rtr/config.yml)")
	flags.String("api-key", "", "API key")
	flags.String("customer", "", "customer handle")
	flags.String("base-url", "", "API base URL")
	flags.Bool("ote", false, "use the operational test environment")
	flags.StringP("output", "o", OutputFormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Duration("timeout", 0, "overall HTTP timeout")
	flags.String("cache", "", "reference data cache (memory, none, nats://host:port/bucket, tiered+nats://...)")

	// Bind flags to viper
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag(keyAPIKey, flags.Lookup("api-key"))
	_ = viper.BindPFlag(keyCustomer, flags.Lookup("customer"))
	_ = viper.BindPFlag(keyBaseURL, flags.Lookup("base-url"))
	_ = viper.BindPFlag(keyOTE, flags.Lookup("ote"))
	_ = viper.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag(keyCache, flags.Lookup("cache"))

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewDomainsCommand())
	rootCmd.AddCommand(NewContactsCommand())
	rootCmd.AddCommand(NewZonesCommand())
	rootCmd.AddCommand(NewCertificatesCommand())
	rootCmd.AddCommand(NewProcessesCommand())
	rootCmd.AddCommand(NewNotificationsCommand())
	rootCmd.AddCommand(NewBillingCommand())
	rootCmd.AddCommand(NewTLDsCommand())
	rootCmd.AddCommand(NewProvidersCommand())

	return rootCmd
}

func initConfig() error {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		// Search config in ~/.rtr/config.yml
		viper.AddConfigPath(filepath.Join(home, configDirName))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match, e.g. RTR_API_KEY
	viper.SetEnvPrefix("RTR")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}
