package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nyumbani/homemanager/pkg/config"
	"github.com/nyumbani/homemanager/pkg/db"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the homemanager application server",
	Long: `Run the homemanager application server.

To run the server requires the environment variables DATABASE_URL and
HOMEMANAGER_JWT_SECRET (or the equivalent config file entries).

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			p, err := strconv.Atoi(port)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid port %q\n", port)
				os.Exit(1)
			}
			cfg.Port = p
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}
		if cfg.JWTSecret == "" {
			fmt.Fprintln(os.Stderr, "HOMEMANAGER_JWT_SECRET environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		s := server.NewServer(database, cfg)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s...\n", cfg.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (default from configuration)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (default from configuration)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
