package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyumbani/homemanager/pkg/config"
	"github.com/nyumbani/homemanager/pkg/db"
	"github.com/nyumbani/homemanager/pkg/rbac"
	gormstore "github.com/nyumbani/homemanager/pkg/server/store/gorm"
)

// rolesSeedCmd represents the roles seed command
var rolesSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed or update the base role catalog",
	Long: `Seed or update the base role catalog.

By default the built-in five-role catalog is used. A YAML catalog file can
be supplied with --file or via the role_catalog_path configuration
attribute. Existing base roles are matched by slug and updated in place.

Example:
  homectl roles seed
  homectl roles seed --file roles.yml
  homectl roles seed --dry-run`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if err := seedRoles(file, dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed roles: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rolesCmd.AddCommand(rolesSeedCmd)
	rolesSeedCmd.Flags().StringP("file", "f", "", "YAML role catalog file (default: built-in catalog)")
	rolesSeedCmd.Flags().Bool("dry-run", false, "report what would change without writing")
}

func loadRoleCatalog(path string) (rbac.Catalog, error) {
	if path == "" {
		path = config.Get().RoleCatalogPath
	}
	if path == "" {
		return rbac.DefaultCatalog(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open role catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	return rbac.LoadCatalog(f)
}

func seedRoles(path string, dryRun bool) error {
	catalog, err := loadRoleCatalog(path)
	if err != nil {
		return err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	result, err := gormstore.NewBaseRolesStore(database).Ensure(catalog, dryRun)
	if err != nil {
		return err
	}

	if result.DryRun {
		fmt.Println("Dry run: no changes were written")
	}
	for _, slug := range result.Created {
		fmt.Printf("created %s\n", slug)
	}
	for _, slug := range result.Updated {
		fmt.Printf("updated %s\n", slug)
	}
	fmt.Printf("Catalog: %d created, %d updated\n", len(result.Created), len(result.Updated))
	return nil
}
