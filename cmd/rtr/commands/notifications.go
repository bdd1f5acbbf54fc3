package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/spf13/cobra"
)

// NewNotificationsCommand creates the notifications command group.
func NewNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification"},
		Short:   "Manage notifications",
		Long:    "List and acknowledge notifications of the configured customer",
	}

	cmd.AddCommand(newNotificationsListCommand())
	cmd.AddCommand(newNotificationsAckCommand())

	return cmd
}

func newNotificationsListCommand() *cobra.Command {
	var unacknowledged bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		Long:  "List notifications, optionally only those not yet acknowledged",
	}

	flags := addListFlags(cmd)
	cmd.Flags().BoolVar(&unacknowledged, "unacknowledged", false, "only list notifications not yet acknowledged")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		query, err := flags.query()
		if err != nil {
			return err
		}

		if unacknowledged {
			query.Where("acknowledgeDate", rtr.MatcherNull, "true")
		}

		client, err := createClient(cmd)
		if err != nil {
			return err
		}

		err = requireCustomer(client)
		if err != nil {
			return err
		}

		page, err := client.Notifications().List(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list notifications: %w", err)
		}

		return renderPage(cmd, page, []any{"ID", "Type", "Process", "Message", "Fired", "Acknowledged"},
			func(notification rtr.Notification) []any {
				return []any{
					strconv.Itoa(notification.ID),
					notification.NotificationType,
					formatInt(notification.Process),
					notification.Message,
					formatTime(notification.FireDate),
					formatOptionalTime(notification.AcknowledgeDate),
				}
			})
	}

	return cmd
}

func newNotificationsAckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ack NOTIFICATION_ID...",
		Short: "Acknowledge notifications",
		Long:  "Mark one or more notifications as acknowledged",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))

			for _, arg := range args {
				id, err := parseID("notification", arg)
				if err != nil {
					return err
				}

				ids = append(ids, id)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			err = requireCustomer(client)
			if err != nil {
				return err
			}

			for _, id := range ids {
				err = client.Notifications().Ack(commandContext(cmd), id)
				if err != nil {
					return fmt.Errorf("failed to acknowledge notification %d: %w", id, err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Notification %d acknowledged\n", id)
			}

			return nil
		},
	}
}
