package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danghq/shopdesk/internal/ops"
	"github.com/danghq/shopdesk/pkg/logger"
)

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shopdesk",
	Short: "Shopdesk — storefront back-office CLI",
	Long:  "Shopdesk manages the storefront's products, categories and accounts through its public API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return ops.Boot()
	},
}

func init() {
	// Auth
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	// Catalog
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(usersCmd)

	// Ops
	rootCmd.AddCommand(serveCmd)
}
