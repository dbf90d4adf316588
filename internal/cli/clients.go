package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/andy/billfold/internal/domain"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
	Long:  `List, add, edit, and delete clients.`,
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clients, err := appInstance.ClientRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		if len(clients) == 0 {
			fmt.Println("No clients found")
			return nil
		}

		fmt.Printf("%-5s %-30s %-20s %-15s %-25s\n", "ID", "Name", "Contact", "Phone", "Email")
		fmt.Println("----------------------------------------------------------------------------------------------")

		for _, client := range clients {
			fmt.Printf("%-5d %-30s %-20s %-15s %-25s\n",
				client.ID,
				truncate(client.Name, 30),
				truncate(client.ContactName, 20),
				truncate(client.PhoneNumber, 15),
				truncate(client.Email, 25),
			)
		}

		fmt.Printf("\nTotal: %d client(s)\n", len(clients))
		return nil
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client := domain.NewClient(args[0])
		client.BillingAddress, _ = cmd.Flags().GetString("address")
		client.ContactName, _ = cmd.Flags().GetString("contact")
		client.PhoneNumber, _ = cmd.Flags().GetString("phone")
		client.Email, _ = cmd.Flags().GetString("email")

		if err := client.Validate(); err != nil {
			return fmt.Errorf("invalid client: %w", err)
		}

		if err := appInstance.ClientRepo.Create(ctx, client); err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		fmt.Printf("✓ Client created: %s (ID: %d)\n", client.Name, client.ID)
		return nil
	},
}

var clientsEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		client, err := appInstance.ClientRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}

		// Update fields if flags provided
		if cmd.Flags().Changed("name") {
			client.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("address") {
			client.BillingAddress, _ = cmd.Flags().GetString("address")
		}
		if cmd.Flags().Changed("contact") {
			client.ContactName, _ = cmd.Flags().GetString("contact")
		}
		if cmd.Flags().Changed("phone") {
			client.PhoneNumber, _ = cmd.Flags().GetString("phone")
		}
		if cmd.Flags().Changed("email") {
			client.Email, _ = cmd.Flags().GetString("email")
		}

		if err := client.Validate(); err != nil {
			return fmt.Errorf("invalid client: %w", err)
		}

		if err := appInstance.ClientRepo.Update(ctx, client); err != nil {
			return fmt.Errorf("failed to update client: %w", err)
		}

		fmt.Printf("✓ Client updated: %s\n", client.Name)
		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a client with no invoices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := appInstance.ClientRepo.Delete(ctx, id); err != nil {
			var blocked *domain.ClientHasInvoicesError
			if errors.As(err, &blocked) {
				return fmt.Errorf("cannot delete client %d: %d invoice(s) still reference it", blocked.ClientID, blocked.Count)
			}
			return fmt.Errorf("failed to delete client: %w", err)
		}

		fmt.Printf("✓ Client deleted (ID: %d)\n", id)
		return nil
	},
}

func init() {
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsEditCmd)
	clientsCmd.AddCommand(clientsDeleteCmd)

	// Add flags
	clientsAddCmd.Flags().String("address", "", "Billing address")
	clientsAddCmd.Flags().String("contact", "", "Contact name")
	clientsAddCmd.Flags().String("phone", "", "Phone number")
	clientsAddCmd.Flags().String("email", "", "Email address")

	// Edit flags
	clientsEditCmd.Flags().String("name", "", "New name")
	clientsEditCmd.Flags().String("address", "", "New billing address")
	clientsEditCmd.Flags().String("contact", "", "New contact name")
	clientsEditCmd.Flags().String("phone", "", "New phone number")
	clientsEditCmd.Flags().String("email", "", "New email address")
}
