package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "homectl",
	Short: "Run and administer the homemanager server",
	Long:  `homectl runs the homemanager API server and administers its database, role catalog, and organizations.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
