package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewProcessesCommand creates the processes command group.
func NewProcessesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "processes",
		Aliases: []string{"process"},
		Short:   "Manage processes",
		Long:    "List, inspect and cancel asynchronous processes",
	}

	cmd.AddCommand(newProcessesListCommand())
	cmd.AddCommand(newProcessesGetCommand())
	cmd.AddCommand(newProcessesCancelCommand())

	return cmd
}

func newProcessesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List processes",
		Long:  "List processes, optionally filtered and sorted",
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

		page, err := client.Processes().List(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list processes: %w", err)
		}

		return renderPage(cmd, page, []any{"ID", "Type", "Action", "Identifier", "Status", "Created"},
			func(process rtr.Process) []any {
				return []any{
					strconv.Itoa(process.ID),
					process.Type,
					process.Action,
					process.Identifier,
					string(process.Status),
					formatTime(process.CreatedDate),
				}
			})
	}

	return cmd
}

func newProcessesGetCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get PROCESS_ID",
		Short: "Get process details",
		Long:  "Display detailed information about a specific process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("process", args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			process, err := client.Processes().Get(commandContext(cmd), id, &rtr.GetOptions{Fields: fields})
			if err != nil {
				return fmt.Errorf("failed to get process: %w", err)
			}

			return render(cmd, process, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(process.ID))
				_ = table.Append("Type", process.Type)
				_ = table.Append("Action", process.Action)
				_ = table.Append("Identifier", process.Identifier)
				_ = table.Append("Customer", process.Customer)
				_ = table.Append("User", process.User)
				_ = table.Append("Status", string(process.Status))

				if process.StatusDetail != "" {
					_ = table.Append("Detail", process.StatusDetail)
				}

				_ = table.Append("Resume Types", formatList(process.ResumeTypes))
				_ = table.Append("Created", formatTime(process.CreatedDate))
				_ = table.Append("Started", formatOptionalTime(process.StartedDate))
				_ = table.Append("Updated", formatOptionalTime(process.UpdatedDate))

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attributes to return")

	return cmd
}

func newProcessesCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PROCESS_ID",
		Short: "Cancel a process",
		Long:  "Cancel a suspended or scheduled process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("process", args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			err = client.Processes().Cancel(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("failed to cancel process: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Process %d cancelled\n", id)

			return nil
		},
	}
}
