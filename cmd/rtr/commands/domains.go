package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewDomainsCommand creates the domains command group.
func NewDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage domains",
		Long:    "List, inspect, renew and delete registered domains",
	}

	cmd.AddCommand(newDomainsListCommand())
	cmd.AddCommand(newDomainsGetCommand())
	cmd.AddCommand(newDomainsCheckCommand())
	cmd.AddCommand(newDomainsRenewCommand())
	cmd.AddCommand(newDomainsDeleteCommand())

	return cmd
}

func newDomainsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains",
		Long:  "List domains, optionally filtered and sorted",
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

		page, err := client.Domains().List(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list domains: %w", err)
		}

		return renderPage(cmd, page, []any{"Domain", "Registrant", "Status", "Expires", "Auto Renew"},
			func(domain rtr.Domain) []any {
				return []any{
					domain.DomainName,
					domain.Registrant,
					formatList(domain.Status),
					formatTime(domain.ExpiryDate),
					strconv.FormatBool(domain.AutoRenew),
				}
			})
	}

	return cmd
}

func newDomainsGetCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get DOMAIN",
		Short: "Get domain details",
		Long:  "Display detailed information about a specific domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			domain, err := client.Domains().Get(commandContext(cmd), args[0], &rtr.GetOptions{Fields: fields})
			if err != nil {
				return fmt.Errorf("failed to get domain: %w", err)
			}

			return render(cmd, domain, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("Domain", domain.DomainName)
				_ = table.Append("Registry", domain.Registry)
				_ = table.Append("Customer", domain.Customer)
				_ = table.Append("Registrant", domain.Registrant)
				_ = table.Append("Status", formatList(domain.Status))
				_ = table.Append("Nameservers", formatList(domain.NS))
				_ = table.Append("Auto Renew", strconv.FormatBool(domain.AutoRenew))
				_ = table.Append("Privacy Protect", strconv.FormatBool(domain.PrivacyProtect))
				_ = table.Append("Created", formatTime(domain.CreatedDate))
				_ = table.Append("Updated", formatOptionalTime(domain.UpdatedDate))
				_ = table.Append("Expires", formatTime(domain.ExpiryDate))

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attributes to return")

	return cmd
}

func newDomainsCheckCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "check DOMAIN...",
		Short: "Check domain availability",
		Long:  "Check whether domain names are available for registration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			if len(args) > 1 {
				return runDomainsBatchCheck(cmd, client, args, concurrency)
			}

			availability, err := client.Domains().Check(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to check domain: %w", err)
			}

			return render(cmd, availability, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("Domain", args[0])
				_ = table.Append("Available", strconv.FormatBool(availability.Available))
				_ = table.Append("Premium", strconv.FormatBool(availability.Premium))

				if availability.Reason != "" {
					_ = table.Append("Reason", availability.Reason)
				}

				if availability.Price != 0 {
					_ = table.Append("Price", formatAmount(availability.Price, availability.Currency))
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultBatchConcurrency, "parallel checks")

	return cmd
}

// domainCheckResult is one row of a multi domain check.
type domainCheckResult struct {
	Domain       string                  `json:"domain"                 yaml:"domain"`
	Availability *rtr.DomainAvailability `json:"availability,omitempty" yaml:"availability,omitempty"`
	Error        string                  `json:"error,omitempty"        yaml:"error,omitempty"`
}

func runDomainsBatchCheck(cmd *cobra.Command, client rtr.Client, domains []string, concurrency int) error {
	builder := rtr.NewBatchBuilder()
	for _, domain := range domains {
		builder.AddCheckDomain(domain, domain)
	}

	results, err := rtr.NewBatchExecutor(client, concurrency).Execute(commandContext(cmd), builder.Build())
	if err != nil {
		return fmt.Errorf("failed to check domains: %w", err)
	}

	rows := make([]domainCheckResult, 0, len(results))

	for _, result := range results {
		row := domainCheckResult{Domain: result.ID}

		if result.Success {
			row.Availability, _ = result.Data.(*rtr.DomainAvailability)
		} else {
			row.Error = result.Error.Error()
		}

		rows = append(rows, row)
	}

	return render(cmd, rows, func(table *tablewriter.Table) error {
		table.Header("Domain", "Available", "Premium", "Reason")

		for _, row := range rows {
			if row.Availability == nil {
				_ = table.Append(row.Domain, NotAvailable, NotAvailable, row.Error)

				continue
			}

			_ = table.Append(
				row.Domain,
				strconv.FormatBool(row.Availability.Available),
				strconv.FormatBool(row.Availability.Premium),
				row.Availability.Reason,
			)
		}

		return nil
	})
}

func newDomainsRenewCommand() *cobra.Command {
	var (
		period int
		quote  bool
	)

	cmd := &cobra.Command{
		Use:   "renew DOMAIN",
		Short: "Renew a domain",
		Long:  "Renew a domain for the given period, or show the price with --quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			request := &rtr.DomainRenewRequest{Period: period}

			if quote {
				result, err := client.Domains().RenewQuote(ctx, args[0], request)
				if err != nil {
					return fmt.Errorf("failed to quote domain renewal: %w", err)
				}

				return renderQuote(cmd, result)
			}

			process, err := client.Domains().Renew(ctx, args[0], request)
			if err != nil {
				return fmt.Errorf("failed to renew domain: %w", err)
			}

			return render(cmd, process, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("Process", formatInt(process.ID))

				if process.Result.ExpiryDate != nil {
					_ = table.Append("Expires", formatOptionalTime(process.Result.ExpiryDate))
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&period, "period", 12, "renewal period in months") //nolint:mnd // one year
	cmd.Flags().BoolVar(&quote, "quote", false, "show the price instead of renewing")

	return cmd
}

func newDomainsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete DOMAIN",
		Short: "Delete a domain",
		Long:  "Delete a domain registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				confirmed, err := confirm(cmd, fmt.Sprintf("Really delete domain %s?", args[0]))
				if err != nil || !confirmed {
					return err
				}
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			process, err := client.Domains().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete domain: %w", err)
			}

			return renderProcessResponse(cmd, process)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
