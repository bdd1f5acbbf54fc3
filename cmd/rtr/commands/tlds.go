package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTLDsCommand creates the TLD command group.
func NewTLDsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tlds",
		Aliases: []string{"tld"},
		Short:   "Inspect TLDs",
		Long:    "Show registry metadata of top level domains",
	}

	cmd.AddCommand(newTLDsInfoCommand())

	return cmd
}

func newTLDsInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info TLD",
		Short: "Show TLD metadata",
		Long:  "Display registry rules and periods of a top level domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			info, err := client.TLDs().Info(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get TLD info: %w", err)
			}

			return render(cmd, info, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("Provider", info.Provider)
				_ = table.Append("Applicable For", formatList(info.ApplicableFor))

				if metadata := info.Metadata; metadata != nil {
					_ = table.Append("Create Periods", formatInts(metadata.CreateDomainPeriods))
					_ = table.Append("Renew Periods", formatInts(metadata.RenewDomainPeriods))
					_ = table.Append("Transfer Periods", formatInts(metadata.TransferDomainPeriods))
					_ = table.Append("Redemption Period", strconv.Itoa(metadata.RedemptionPeriod))
					_ = table.Append("Transfer Requires Authcode", strconv.FormatBool(metadata.TransferRequiresAuthcode))
				}

				return nil
			})
		},
	}
}
