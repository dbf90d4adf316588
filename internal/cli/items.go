package cli

import (
	"context"
	"fmt"

	"github.com/andy/billfold/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage the billable item catalog",
	Long:  `List, add, edit, and delete catalog items.`,
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		items, err := appInstance.CatalogRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list catalog items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No catalog items found")
			return nil
		}

		fmt.Printf("%-5s %-50s %-12s\n", "ID", "Item", "Unit Price")
		fmt.Println("---------------------------------------------------------------------")

		for _, item := range items {
			fmt.Printf("%-5d %-50s $%-11s\n",
				item.ID,
				truncate(item.Name, 50),
				item.UnitPrice.StringFixed(2),
			)
		}

		fmt.Printf("\nTotal: %d item(s)\n", len(items))
		return nil
	},
}

var itemsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		priceStr, _ := cmd.Flags().GetString("price")
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return fmt.Errorf("invalid unit price '%s': %w", priceStr, err)
		}

		item := domain.NewCatalogItem(args[0], price)
		if err := item.Validate(); err != nil {
			return fmt.Errorf("invalid catalog item: %w", err)
		}

		if err := appInstance.CatalogRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to create catalog item: %w", err)
		}

		fmt.Printf("✓ Item created: %s (ID: %d)\n", item.Name, item.ID)
		fmt.Printf("  Unit Price: $%s\n", item.UnitPrice.StringFixed(2))
		return nil
	},
}

var itemsEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a catalog item (existing invoices are unaffected)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		item, err := appInstance.CatalogRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get catalog item: %w", err)
		}

		if cmd.Flags().Changed("name") {
			item.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("price") {
			priceStr, _ := cmd.Flags().GetString("price")
			if item.UnitPrice, err = decimal.NewFromString(priceStr); err != nil {
				return fmt.Errorf("invalid unit price '%s': %w", priceStr, err)
			}
		}

		if err := item.Validate(); err != nil {
			return fmt.Errorf("invalid catalog item: %w", err)
		}

		if err := appInstance.CatalogRepo.Update(ctx, item); err != nil {
			return fmt.Errorf("failed to update catalog item: %w", err)
		}

		fmt.Printf("✓ Item updated: %s\n", item.Name)
		return nil
	},
}

var itemsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a catalog item (existing invoices are unaffected)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := appInstance.CatalogRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete catalog item: %w", err)
		}

		fmt.Printf("✓ Item deleted (ID: %d)\n", id)
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsEditCmd)
	itemsCmd.AddCommand(itemsDeleteCmd)

	// Add flags
	itemsAddCmd.Flags().String("price", "", "Unit price (required)")
	itemsAddCmd.MarkFlagRequired("price")

	// Edit flags
	itemsEditCmd.Flags().String("name", "", "New name")
	itemsEditCmd.Flags().String("price", "", "New unit price")
}
