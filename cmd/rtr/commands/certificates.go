package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCertificatesCommand creates the SSL certificates command group.
func NewCertificatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "certificates",
		Aliases: []string{"certificate", "certs", "cert"},
		Short:   "Manage SSL certificates",
		Long:    "List, inspect and download SSL certificates",
	}

	cmd.AddCommand(newCertificatesListCommand())
	cmd.AddCommand(newCertificatesGetCommand())
	cmd.AddCommand(newCertificatesDownloadCommand())
	cmd.AddCommand(newCertificatesDecodeCSRCommand())

	return cmd
}

func newCertificatesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List certificates",
		Long:  "List SSL certificates, optionally filtered and sorted",
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

		page, err := client.Certificates().List(commandContext(cmd), query)
		if err != nil {
			return fmt.Errorf("failed to list certificates: %w", err)
		}

		return renderPage(cmd, page, []any{"ID", "Domain", "Product", "Status", "Expires"},
			func(certificate rtr.Certificate) []any {
				return []any{
					strconv.Itoa(certificate.ID),
					certificate.DomainName,
					certificate.Product,
					string(certificate.Status),
					formatTime(certificate.ExpiryDate),
				}
			})
	}

	return cmd
}

func newCertificatesGetCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get CERTIFICATE_ID",
		Short: "Get certificate details",
		Long:  "Display detailed information about a specific certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("certificate", args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			certificate, err := client.Certificates().Get(commandContext(cmd), id, &rtr.GetOptions{Fields: fields})
			if err != nil {
				return fmt.Errorf("failed to get certificate: %w", err)
			}

			return render(cmd, certificate, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(certificate.ID))
				_ = table.Append("Domain", certificate.DomainName)
				_ = table.Append("Product", certificate.Product)
				_ = table.Append("Validation", certificate.ValidationType)
				_ = table.Append("Type", certificate.CertificateType)
				_ = table.Append("Status", string(certificate.Status))
				_ = table.Append("SAN", formatList(certificate.SAN))
				_ = table.Append("Organization", certificate.Organization)
				_ = table.Append("Started", formatTime(certificate.StartDate))
				_ = table.Append("Expires", formatTime(certificate.ExpiryDate))
				_ = table.Append("Subscription Ends", formatOptionalTime(certificate.SubscriptionEndDate))

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attributes to return")

	return cmd
}

func newCertificatesDownloadCommand() *cobra.Command {
	var (
		format     string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "download CERTIFICATE_ID",
		Short: "Download a certificate",
		Long:  "Download a certificate as CRT, CA, CA_BUNDLE or PKCS7",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("certificate", args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			opts := &rtr.DownloadOptions{Format: rtr.DownloadFormat(strings.ToUpper(format))}

			data, err := client.Certificates().Download(commandContext(cmd), id, opts)
			if err != nil {
				return fmt.Errorf("failed to download certificate: %w", err)
			}

			if outputFile == "" {
				_, err = cmd.OutOrStdout().Write(data)

				return err
			}

			err = os.WriteFile(outputFile, data, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write certificate: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Certificate written to %s\n", outputFile)

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(rtr.DownloadFormatCRT), "download format")
	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "write to file instead of stdout")

	return cmd
}

func newCertificatesDecodeCSRCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-csr [FILE]",
		Short: "Decode a certificate signing request",
		Long:  "Decode a PEM encoded CSR read from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			csr, err := readCSR(cmd, args)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			info, err := client.Certificates().DecodeCSR(commandContext(cmd), csr)
			if err != nil {
				return fmt.Errorf("failed to decode CSR: %w", err)
			}

			return render(cmd, info, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("Common Name", info.CommonName)
				_ = table.Append("Organization", info.Organization)
				_ = table.Append("Country", info.Country)
				_ = table.Append("Alt Names", formatList(info.AltNames))
				_ = table.Append("Key", fmt.Sprintf("%s %d", info.PublicKeyAlgorithm, info.PublicKeySize))

				return nil
			})
		},
	}
}

func readCSR(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)

	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}

	if err != nil {
		return "", fmt.Errorf("failed to read CSR: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
