package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/lineitem"
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
	Long:  `Create, list, update, render, and manage invoices.`,
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		filter := domain.InvoiceFilter{Status: "all"}
		if cmd.Flags().Changed("status") {
			filter.Status, _ = cmd.Flags().GetString("status")
		}
		filter.DateFrom, _ = cmd.Flags().GetString("from")
		filter.DateTo, _ = cmd.Flags().GetString("to")

		summaries, err := appInstance.InvoiceService.ListInvoices(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No invoices found")
			return nil
		}

		fmt.Printf("%-5s %-30s %-12s %-12s %-8s\n", "ID", "Client", "Subtotal", "Date", "Status")
		fmt.Println("-----------------------------------------------------------------------")

		for _, summary := range summaries {
			fmt.Printf("%-5d %-30s $%-11s %-12s %-8s\n",
				summary.ID,
				truncate(summary.ClientName, 30),
				summary.Subtotal.StringFixed(2),
				summary.Date,
				summary.Status,
			)
		}

		fmt.Printf("\nTotal: %d invoice(s)\n", len(summaries))
		return nil
	},
}

var invoicesCreateCmd = &cobra.Command{
	Use:   "create [client_name]",
	Short: "Create a new invoice from catalog quantities",
	Long: `Create an unpaid invoice dated today for the named client.
Quantities are given per catalog item with repeated --item flags, e.g.

  billfold invoices create "Acme" --item 1=2 --item 3=1.5

Catalog items without an --item flag are recorded with quantity 0.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		specs, _ := cmd.Flags().GetStringArray("item")
		quantities, err := parseQuantities(specs)
		if err != nil {
			return err
		}

		invoice, err := appInstance.InvoiceService.CreateInvoice(ctx, args[0], quantities, time.Now())
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		fmt.Printf("✓ Invoice created (ID: %d)\n", invoice.ID)
		fmt.Printf("  Client: %s\n", args[0])
		fmt.Printf("  Date: %s\n", invoice.Date.Format(domain.DateLayout))
		fmt.Printf("  Subtotal: $%s\n", invoice.Subtotal.StringFixed(2))
		return nil
	},
}

var invoicesUpdateCmd = &cobra.Command{
	Use:   "update [id] [client_name]",
	Short: "Replace an invoice's client and line items",
	Long: `Overwrite the client and quantities of an existing invoice.
The creation date and payment status are not changed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		specs, _ := cmd.Flags().GetStringArray("item")
		quantities, err := parseQuantities(specs)
		if err != nil {
			return err
		}

		if err := appInstance.InvoiceService.UpdateInvoice(ctx, id, args[1], quantities); err != nil {
			return fmt.Errorf("failed to update invoice: %w", err)
		}

		fmt.Printf("✓ Invoice updated (ID: %d)\n", id)
		return nil
	},
}

var invoicesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show invoice details and line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		invoice, err := appInstance.InvoiceService.GetInvoice(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		client, err := appInstance.ClientRepo.GetByID(ctx, invoice.ClientID)
		clientName := fmt.Sprintf("Client #%d", invoice.ClientID)
		if err == nil {
			clientName = client.Name
		}

		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Invoice #%d\n", invoice.ID)
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Client: %s\n", clientName)
		fmt.Printf("Date: %s\n", invoice.Date.Format(domain.DateLayout))
		fmt.Printf("Status: %s\n", invoice.Status)
		fmt.Println()

		lines := lineitem.Decode(invoice.LineItems)
		if len(lines) > 0 {
			fmt.Println("Line Items:")
			fmt.Println(strings.Repeat("-", 80))
			fmt.Printf("%-45s %-10s %-10s %s\n", "Item", "Quantity", "Price", "Total")
			fmt.Println(strings.Repeat("-", 80))

			for _, line := range lines {
				fmt.Printf("%-45s %-10s $%-9s $%s\n",
					truncate(line.Item, 45),
					line.Quantity,
					line.UnitPrice,
					line.LineTotal,
				)
			}
			fmt.Println(strings.Repeat("-", 80))
		}

		fmt.Printf("\nSubtotal: $%s\n", invoice.Subtotal.StringFixed(2))
		fmt.Println(strings.Repeat("=", 80))
		return nil
	},
}

var invoicesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("deletion is permanent; re-run with --yes to confirm")
		}

		if err := appInstance.InvoiceService.DeleteInvoice(ctx, id); err != nil {
			return fmt.Errorf("failed to delete invoice: %w", err)
		}

		fmt.Printf("✓ Invoice deleted (ID: %d)\n", id)
		return nil
	},
}

var invoicesMarkPaidCmd = &cobra.Command{
	Use:   "mark-paid [id]",
	Short: "Mark an invoice as paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(args[0], domain.InvoiceStatusPaid)
	},
}

var invoicesMarkUnpaidCmd = &cobra.Command{
	Use:   "mark-unpaid [id]",
	Short: "Mark an invoice as unpaid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(args[0], domain.InvoiceStatusUnpaid)
	},
}

var invoicesRenderCmd = &cobra.Command{
	Use:   "render [id]",
	Short: "Render an invoice to an HTML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		invoice, err := appInstance.InvoiceService.GetInvoice(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		client, err := appInstance.ClientRepo.GetByID(ctx, invoice.ClientID)
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}

		preferences, err := appInstance.Prefs.Load()
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}

		doc := appInstance.Renderer.Render(invoice, client, preferences)
		path, err := appInstance.WriteDocument(doc)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Invoice rendered: %s\n", path)
		return nil
	},
}

var invoicesExportCmd = &cobra.Command{
	Use:   "export [file.csv]",
	Short: "Export all invoices to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		rows, err := appInstance.InvoiceService.ExportRows(ctx)
		if err != nil {
			return fmt.Errorf("failed to export invoices: %w", err)
		}

		file, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer file.Close()

		writer := csv.NewWriter(file)
		if err := writer.WriteAll(rows); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}

		fmt.Printf("✓ Exported %d invoice(s) to %s\n", len(rows)-1, args[0])
		return nil
	},
}

func setStatus(arg string, status domain.InvoiceStatus) error {
	ctx := context.Background()

	id, err := parseID(arg)
	if err != nil {
		return err
	}

	if err := appInstance.InvoiceService.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to mark invoice as %s: %w", status, err)
	}

	fmt.Printf("✓ Invoice #%d marked as %s\n", id, status)
	return nil
}

func init() {
	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesCreateCmd)
	invoicesCmd.AddCommand(invoicesUpdateCmd)
	invoicesCmd.AddCommand(invoicesShowCmd)
	invoicesCmd.AddCommand(invoicesDeleteCmd)
	invoicesCmd.AddCommand(invoicesMarkPaidCmd)
	invoicesCmd.AddCommand(invoicesMarkUnpaidCmd)
	invoicesCmd.AddCommand(invoicesRenderCmd)
	invoicesCmd.AddCommand(invoicesExportCmd)

	// List flags
	invoicesListCmd.Flags().String("status", "all", "Filter by status (all, paid, unpaid)")
	invoicesListCmd.Flags().String("from", "", "Earliest date (YYYY-MM-DD, inclusive)")
	invoicesListCmd.Flags().String("to", "", "Latest date (YYYY-MM-DD, inclusive)")

	// Create/update flags
	invoicesCreateCmd.Flags().StringArray("item", nil, "Quantity per catalog item as itemID=quantity (repeatable)")
	invoicesUpdateCmd.Flags().StringArray("item", nil, "Quantity per catalog item as itemID=quantity (repeatable)")

	// Delete flags
	invoicesDeleteCmd.Flags().Bool("yes", false, "Confirm permanent deletion")
}
