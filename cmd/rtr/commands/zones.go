package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewZonesCommand creates the DNS zones command group.
func NewZonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zones",
		Aliases: []string{"zone"},
		Short:   "Manage DNS zones",
		Long:    "List and inspect DNS zones",
	}

	cmd.AddCommand(newZonesListCommand())
	cmd.AddCommand(newZonesGetCommand())
	cmd.AddCommand(newZonesStatsCommand())

	return cmd
}

func newZonesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List DNS zones",
		Long:  "List DNS zones, optionally filtered and sorted",
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

		page, err := client.DNSZones().List(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list zones: %w", err)
		}

		return renderPage(cmd, page, []any{"ID", "Name", "Service", "Template", "Created"},
			func(zone rtr.DNSZone) []any {
				return []any{
					strconv.Itoa(zone.ID),
					zone.Name,
					string(zone.Service),
					zone.Template,
					formatTime(zone.CreatedDate),
				}
			})
	}

	return cmd
}

func newZonesGetCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get ZONE_ID",
		Short: "Get DNS zone details",
		Long:  "Display a DNS zone including its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("zone", args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			zone, err := client.DNSZones().Get(commandContext(cmd), id, &rtr.GetOptions{Fields: fields})
			if err != nil {
				return fmt.Errorf("failed to get zone: %w", err)
			}

			return render(cmd, zone, func(table *tablewriter.Table) error {
				table.Header("Name", "Type", "Content", "TTL", "Priority")

				for _, record := range zone.Records {
					_ = table.Append(
						record.Name,
						string(record.Type),
						record.Content,
						strconv.Itoa(record.TTL),
						formatOptionalInt(record.Prio),
					)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attributes to return")

	return cmd
}

func newZonesStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats ZONE_ID",
		Short: "Show DNS zone statistics",
		Long:  "Display query statistics of a DNS zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("zone", args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			stats, err := client.DNSZones().Stats(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("failed to get zone statistics: %w", err)
			}

			return render(cmd, stats, func(table *tablewriter.Table) error {
				table.Header("Date", "Queries", "NXDOMAIN")

				for _, queries := range stats.Queries {
					_ = table.Append(
						queries.Date.Format("2006-01-02"),
						strconv.Itoa(queries.QCount),
						strconv.Itoa(queries.NXCount),
					)
				}

				return nil
			})
		},
	}
}
