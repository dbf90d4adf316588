package cli

import (
	"fmt"

	"github.com/andy/billfold/internal/prefs"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage company preferences used on rendered invoices",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := appInstance.Prefs.Load()
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}

		for _, key := range prefs.Keys {
			fmt.Printf("%-16s %s\n", key, values[key])
		}
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a preference and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if !prefs.KnownKey(key) {
			return fmt.Errorf("unknown preference key '%s'", key)
		}

		values, err := appInstance.Prefs.Load()
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}

		values[key] = value
		if err := appInstance.Prefs.Save(values); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}

		fmt.Printf("✓ %s = %s\n", key, value)
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
