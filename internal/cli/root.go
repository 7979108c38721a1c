package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papilon-app/papilon-cli/internal/cli/commands"
)

var version = "dev" // Set during build

var rootCmd = &cobra.Command{
	Use:   "papilon",
	Short: "Papilon - admin CLI for the Papilon loyalty platform",
	Long: `Papilon CLI - Manage your local business on the Papilon points platform.

Authenticate with 'papilon login', then manage your product catalog, register
invoices, and review point redemptions. All data lives in the Papilon backend;
this tool only talks to its HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("papilon version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewProductosCmd())
	rootCmd.AddCommand(commands.NewFacturasCmd())
	rootCmd.AddCommand(commands.NewCanjesCmd())
	rootCmd.AddCommand(commands.NewCategoriasCmd())
	rootCmd.AddCommand(commands.NewClientesCmd())
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
