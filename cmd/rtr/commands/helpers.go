package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// parseID parses a numeric resource id argument.
func parseID(kind, value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, value)
	}

	return id, nil
}

// confirm asks a yes/no question on the command's input.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false, nil //nolint:nilerr // no input means no
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes", nil
}

func renderQuote(cmd *cobra.Command, quote *rtr.Quote) error {
	return render(cmd, quote, func(table *tablewriter.Table) error {
		table.Header("Product", "Action", "Quantity", "Amount")

		for _, billable := range quote.Billables {
			_ = table.Append(
				billable.Product,
				string(billable.Action),
				strconv.Itoa(billable.Quantity),
				formatAmount(billable.Total, quote.Currency),
			)
		}

		_ = table.Append("Total", "", "", formatAmount(quote.Total, quote.Currency))

		return nil
	})
}

func renderProcessResponse(cmd *cobra.Command, process *rtr.ProcessResponse) error {
	return render(cmd, process, func(table *tablewriter.Table) error {
		table.Header("Property", "Value")
		_ = table.Append("Process", formatInt(process.ID))
		_ = table.Append("Status", strconv.Itoa(process.Status))

		return nil
	})
}
