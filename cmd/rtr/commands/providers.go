package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/spf13/cobra"
)

// NewProvidersCommand creates the providers command group.
func NewProvidersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"provider"},
		Short:   "Inspect registry providers",
		Long:    "List registry providers and their scheduled downtime",
	}

	cmd.AddCommand(newProvidersListCommand())
	cmd.AddCommand(newProvidersDowntimeCommand())

	return cmd
}

func newProvidersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List providers",
		Long:  "List registry providers and the TLDs they serve",
	}

	flags := addListFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		query, err := flags.query()
		if err != nil {
			return err
		}

		client, err := createClient(cmd)
		if err != nil {
			return err
		}

		page, err := client.Providers().List(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list providers: %w", err)
		}

		return renderPage(cmd, page, []any{"Name", "TLDs"}, func(provider rtr.Provider) []any {
			return []any{provider.Name, formatList(provider.TLDs)}
		})
	}

	return cmd
}

func newProvidersDowntimeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downtime",
		Short: "List provider downtime windows",
		Long:  "List scheduled maintenance windows of registry providers",
	}

	flags := addListFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		query, err := flags.query()
		if err != nil {
			return err
		}

		client, err := createClient(cmd)
		if err != nil {
			return err
		}

		page, err := client.Providers().ListDowntimeWindows(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list downtime windows: %w", err)
		}

		return renderPage(cmd, page, []any{"ID", "Provider", "Start", "End", "Reason"},
			func(window rtr.DowntimeWindow) []any {
				return []any{
					strconv.Itoa(window.ID),
					window.Provider.Name,
					formatTime(window.StartDate),
					formatTime(window.EndDate),
					window.Reason,
				}
			})
	}

	return cmd
}
