package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".rtr"
	configFileName = "config.yml"

	keyAPIKey   = "api_key"
	keyCustomer = "customer"
	keyBaseURL  = "base_url"
	keyOTE      = "ote"
	keyOutput   = "output"
	keyCache    = "cache"
)

// Config represents the persisted CLI configuration.
type Config struct {
	APIKey   string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	Customer string `json:"customer,omitempty" yaml:"customer,omitempty"`
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	OTE      bool   `json:"ote,omitempty"      yaml:"ote,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
	Cache    string `json:"cache,omitempty"    yaml:"cache,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage RTR CLI configuration stored in $HOME/.rtr/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration, with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.APIKey != "" {
				config.APIKey = Masked
			}

			return render(cmd, config, func(table *tablewriter.Table) error {
				table.Header("Key", "Value")

				for _, key := range configKeys() {
					value, _ := config.get(key)
					_ = table.Append(key, value)
				}

				return nil
			})
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Long:  "Print a single value of the effective configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := loadConfig().get(args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigFile(func(config *Config) error {
				return config.set(args[0], args[1])
			})
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigFile(func(config *Config) error {
				return config.unset(args[0])
			})
		},
	}
}

func configKeys() []string {
	return []string{keyAPIKey, keyCustomer, keyBaseURL, keyOTE, keyOutput, keyCache}
}

// loadConfig returns the effective configuration from flags, environment and
// config file.
func loadConfig() *Config {
	return &Config{
		APIKey:   viper.GetString(keyAPIKey),
		Customer: viper.GetString(keyCustomer),
		BaseURL:  viper.GetString(keyBaseURL),
		OTE:      viper.GetBool(keyOTE),
		Output:   viper.GetString(keyOutput),
		Cache:    viper.GetString(keyCache),
	}
}

func (c *Config) get(key string) (string, error) {
	switch key {
	case keyAPIKey:
		return c.APIKey, nil
	case keyCustomer:
		return c.Customer, nil
	case keyBaseURL:
		return c.BaseURL, nil
	case keyOTE:
		return strconv.FormatBool(c.OTE), nil
	case keyOutput:
		return c.Output, nil
	case keyCache:
		return c.Cache, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}
}

func (c *Config) set(key, value string) error {
	switch key {
	case keyAPIKey:
		if value == "" {
			return constants.ErrEmptyAPIKey
		}

		c.APIKey = value
	case keyCustomer:
		c.Customer = value
	case keyBaseURL:
		c.BaseURL = value
	case keyOTE:
		ote, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		c.OTE = ote
	case keyOutput:
		if !validOutputFormat(value) {
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, value)
		}

		c.Output = value
	case keyCache:
		_, err := rtr.ParseCacheURL(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		c.Cache = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func (c *Config) unset(key string) error {
	switch key {
	case keyAPIKey:
		c.APIKey = ""
	case keyCustomer:
		c.Customer = ""
	case keyBaseURL:
		c.BaseURL = ""
	case keyOTE:
		c.OTE = false
	case keyOutput:
		c.Output = ""
	case keyCache:
		c.Cache = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the config file in use, or the default location.
func configFilePath() (string, error) {
	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}

	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

// readConfigFile reads the config file only, ignoring flags and environment.
// A missing file yields an empty configuration.
func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config file
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

func writeConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func updateConfigFile(update func(config *Config) error) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	config, err := readConfigFile(path)
	if err != nil {
		return err
	}

	err = update(config)
	if err != nil {
		return err
	}

	return writeConfigFile(path, config)
}
