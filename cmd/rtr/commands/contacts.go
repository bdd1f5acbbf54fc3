package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewContactsCommand creates the contacts command group.
func NewContactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage contacts",
		Long:    "List and inspect contacts of the configured customer",
	}

	cmd.AddCommand(newContactsListCommand())
	cmd.AddCommand(newContactsGetCommand())

	return cmd
}

func newContactsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long:  "List contacts, optionally filtered and sorted",
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

		err = requireCustomer(client)
		if err != nil {
			return err
		}

		page, err := client.Contacts().List(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list contacts: %w", err)
		}

		return renderPage(cmd, page, []any{"Handle", "Name", "Organization", "Email", "Country"},
			func(contact rtr.Contact) []any {
				return []any{contact.Handle, contact.Name, contact.Organization, contact.Email, contact.Country}
			})
	}

	return cmd
}

func newContactsGetCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get HANDLE",
		Short: "Get contact details",
		Long:  "Display detailed information about a specific contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			err = requireCustomer(client)
			if err != nil {
				return err
			}

			contact, err := client.Contacts().Get(commandContext(cmd), args[0], &rtr.GetOptions{Fields: fields})
			if err != nil {
				return fmt.Errorf("failed to get contact: %w", err)
			}

			return render(cmd, contact, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("Handle", contact.Handle)
				_ = table.Append("Name", contact.Name)
				_ = table.Append("Organization", contact.Organization)
				_ = table.Append("Address", strings.Join(contact.AddressLine, ", "))
				_ = table.Append("Postal Code", contact.PostalCode)
				_ = table.Append("City", contact.City)
				_ = table.Append("Country", contact.Country)
				_ = table.Append("Email", contact.Email)
				_ = table.Append("Voice", contact.Voice)
				_ = table.Append("Registries", formatList(contact.Registries))
				_ = table.Append("Created", formatTime(contact.CreatedDate))

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attributes to return")

	return cmd
}
