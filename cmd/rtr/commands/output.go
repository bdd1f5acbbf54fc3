package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Masked       = "***"

	// Output formats.
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	centsPerUnit = 100
)

func validOutputFormat(format string) bool {
	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

// render writes value in the configured output format. Table output is
// delegated to fill.
func render(cmd *cobra.Command, value any, fill func(table *tablewriter.Table) error) error {
	out := cmd.OutOrStdout()

	switch format := viper.GetString(keyOutput); format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return nil
	case "", OutputFormatTable:
		table := tablewriter.NewWriter(out)

		err := fill(table)
		if err != nil {
			return err
		}

		err = table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, format)
	}
}

// renderPage renders a list page; table output gets a pagination footer.
func renderPage[T any](cmd *cobra.Command, page *rtr.Page[T], header []any, row func(item T) []any) error {
	if len(page.Entities) == 0 && isTableOutput() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No results found")

		return nil
	}

	err := render(cmd, page, func(table *tablewriter.Table) error {
		table.Header(header...)

		for _, item := range page.Entities {
			err := table.Append(row(item)...)
			if err != nil {
				return fmt.Errorf("failed to append table row: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if isTableOutput() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), paginationSummary(len(page.Entities), page.Pagination))
	}

	return nil
}

func isTableOutput() bool {
	format := viper.GetString(keyOutput)

	return format == "" || format == OutputFormatTable
}

func paginationSummary(count int, pagination rtr.Pagination) string {
	summary := fmt.Sprintf("Showing %d", count)

	if pagination.Offset != nil && *pagination.Offset > 0 {
		summary += fmt.Sprintf(" from offset %d", *pagination.Offset)
	}

	if pagination.Total != nil {
		summary += fmt.Sprintf(" of %d", *pagination.Total)
	}

	return summary
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return formatTime(*t)
}

// formatAmount renders an amount in cents.
func formatAmount(cents int, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d %s", sign, cents/centsPerUnit, cents%centsPerUnit, currency)
}

func formatList[T ~string](values []T) string {
	if len(values) == 0 {
		return NotAvailable
	}

	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, string(value))
	}

	return strings.Join(parts, ", ")
}

func formatInt(value int) string {
	if value == 0 {
		return NotAvailable
	}

	return strconv.Itoa(value)
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return NotAvailable
	}

	return strconv.Itoa(*value)
}

func formatInts(values []int) string {
	if len(values) == 0 {
		return NotAvailable
	}

	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, strconv.Itoa(value))
	}

	return strings.Join(parts, ", ")
}
