package commands

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBillingCommand creates the billing command group.
func NewBillingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Inspect billing",
		Long:  "Show financial transactions, exchange rates and account credit",
	}

	cmd.AddCommand(newBillingTransactionsCommand())
	cmd.AddCommand(newBillingExchangeRatesCommand())
	cmd.AddCommand(newBillingCreditCommand())

	return cmd
}

func newBillingTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List financial transactions",
		Long:  "List financial transactions, optionally filtered and sorted",
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

		page, err := client.Billing().ListTransactions(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}

		return renderPage(cmd, page, []any{"ID", "Date", "Process", "Type", "Identifier", "Amount"},
			func(transaction rtr.Transaction) []any {
				return []any{
					strconv.Itoa(transaction.ID),
					formatTime(transaction.Date),
					formatInt(transaction.ProcessID),
					transaction.ProcessType,
					transaction.ProcessIdentifier,
					formatAmount(transaction.Amount, transaction.Currency),
				}
			})
	}

	return cmd
}

func newBillingExchangeRatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange-rates",
		Short: "List exchange rates",
		Long:  "List the exchange rates used to convert prices between currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			rates, err := client.Billing().ListExchangeRates(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list exchange rates: %w", err)
			}

			return render(cmd, rates, func(table *tablewriter.Table) error {
				table.Header("From", "To", "Rate")

				for _, rate := range rates {
					for _, target := range slices.Sorted(maps.Keys(rate.ExchangeRates)) {
						_ = table.Append(
							rate.Currency,
							target,
							strconv.FormatFloat(rate.ExchangeRates[target], 'f', -1, 64),
						)
					}
				}

				return nil
			})
		},
	}
}

func newBillingCreditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "credit",
		Short: "Show account credit",
		Long:  "Show the balance of each account of the configured customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			err = requireCustomer(client)
			if err != nil {
				return err
			}

			credit, err := client.Customers().Credit(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to get credit: %w", err)
			}

			return render(cmd, credit, func(table *tablewriter.Table) error {
				table.Header("Currency", "Balance", "Reserved")

				for _, account := range credit.Accounts {
					_ = table.Append(
						account.Currency,
						formatAmount(account.Balance, account.Currency),
						formatAmount(account.Reservation, account.Currency),
					)
				}

				return nil
			})
		},
	}
}
