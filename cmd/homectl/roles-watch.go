package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/nyumbani/homemanager/pkg/db"
	"github.com/nyumbani/homemanager/pkg/rbac"
	gormstore "github.com/nyumbani/homemanager/pkg/server/store/gorm"
)

// rolesWatchCmd represents the roles watch command
var rolesWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a role catalog file and reseed when it changes",
	Long: `Watch a YAML role catalog file and reseed the base roles when it changes.

Each time the watched file is written, the catalog is parsed and applied.
A file that fails to parse is reported and skipped; the previous catalog
stays in effect.

Example:
  homectl roles watch /etc/homemanager/roles.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		if err := watchRoleCatalog(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch role catalog: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rolesCmd.AddCommand(rolesWatchCmd)
}

func watchRoleCatalog(filename string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}
	baseRoles := gormstore.NewBaseRolesStore(database)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for role catalog changes\n", filename)

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, reseeding role catalog...\n", time.Now().Format(time.RFC3339))

				if err := reseedFromFile(baseRoles, filename); err != nil {
					fmt.Fprintf(os.Stderr, "Error reseeding catalog: %v\n", err)
				} else {
					fmt.Printf("Role catalog applied from %s\n", filename)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func reseedFromFile(baseRoles *gormstore.BaseRolesStore, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open role catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	catalog, err := rbac.LoadCatalog(f)
	if err != nil {
		return err
	}

	result, err := baseRoles.Ensure(catalog, false)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog: %d created, %d updated\n", len(result.Created), len(result.Updated))
	return nil
}
