package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rolesCmd represents the roles command
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage the role catalog",
	Long:  `Manage the base role catalog and per-organization roles.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'roles' requires a subcommand (seed, provision, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}
