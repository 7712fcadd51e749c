// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-retail-admin",
	Short: "GoRetail-Admin is the backend for the retail admin console",
	Long: `GoRetail-Admin is the backend service of a retail/inventory admin
console. It serves the JSON API for products, stock, orders, clients and
users, and drives the permission-tree based navigation of the SPA.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
