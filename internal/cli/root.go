package cli

import (
	"github.com/andy/billfold/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "billfold",
	Short: "A CLI invoicing tool for small service businesses",
	Long: `Billfold manages clients, a catalog of billable items, and the
invoices generated from them. Invoices render to HTML documents ready to
send to the client.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(invoicesCmd)
	rootCmd.AddCommand(prefsCmd)
}
