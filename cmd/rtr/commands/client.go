package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/rtr/internal/auth"
	apiclient "github.com/fivetwenty-io/rtr/internal/client"
	"github.com/fivetwenty-io/rtr/internal/constants"
	rtrhttp "github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// userAgent is sent by every CLI request.
const userAgent = "rtr-cli"

// createClient builds an API client from the effective configuration.
func createClient(cmd *cobra.Command) (rtr.Client, error) {
	config := loadConfig()
	if config.APIKey == "" {
		return nil, constants.ErrNoAPIKey
	}

	return newAPIClient(cmd, config)
}

func newAPIClient(cmd *cobra.Command, config *Config) (rtr.Client, error) {
	verbose := viper.GetBool("verbose")

	var cache *rtr.CacheConfig

	if config.Cache != "" {
		var err error

		cache, err = rtr.ParseCacheURL(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("invalid cache setting: %w", err)
		}
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose)

	var extra []rtrhttp.Option
	if verbose {
		extra = append(extra, rtrhttp.WithTransportLogger(logger.entry.WithField("component", "transport")))
	}

	client, err := apiclient.NewWithAuthorizer(&rtr.Config{
		APIKey:    config.APIKey,
		Customer:  config.Customer,
		OTE:       config.OTE,
		BaseURL:   config.BaseURL,
		Timeout:   viper.GetDuration("timeout"),
		Cache:     cache,
		Debug:     verbose,
		Logger:    logger,
		UserAgent: userAgent,
	}, newAuthorizer(config.APIKey), extra...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// configFileKeySource reads the API key from the CLI config file.
type configFileKeySource struct{}

func (configFileKeySource) LoadAPIKey(path string) (string, error) {
	config, err := readConfigFile(path)
	if err != nil {
		return "", err
	}

	return config.APIKey, nil
}

// newAuthorizer reloads a key that came from the config file after the API
// rejects it. Keys given by flag or environment are used as is.
func newAuthorizer(apiKey string) auth.Authorizer {
	path, err := configFilePath()
	if err != nil {
		return auth.NewAPIKeyAuthorizer(apiKey)
	}

	stored, err := configFileKeySource{}.LoadAPIKey(path)
	if err != nil || stored == "" || stored != apiKey {
		return auth.NewAPIKeyAuthorizer(apiKey)
	}

	authorizer := auth.NewConfigAuthorizer(configFileKeySource{}, path)
	authorizer.SetKey(apiKey)

	return authorizer
}

// requireCustomer fails early for commands on customer scoped resources.
func requireCustomer(client rtr.Client) error {
	if client.Customer() == "" {
		return constants.ErrNoCustomer
	}

	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
