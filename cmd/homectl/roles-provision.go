package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyumbani/homemanager/pkg/db"
	gormstore "github.com/nyumbani/homemanager/pkg/server/store/gorm"
)

// rolesProvisionCmd represents the roles provision command
var rolesProvisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create missing organization roles for every organization",
	Long: `Create missing organization roles for every organization.

Every organization gets one role per base role. This command backfills the
missing pairs, for example after a new base role has been seeded.

Example:
  homectl roles provision
  homectl roles provision --dry-run`,
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if err := provisionRoles(dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to provision roles: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rolesCmd.AddCommand(rolesProvisionCmd)
	rolesProvisionCmd.Flags().Bool("dry-run", false, "report what would change without writing")
}

func provisionRoles(dryRun bool) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	result, err := gormstore.NewOrgRolesStore(database).ProvisionAll(dryRun)
	if err != nil {
		return err
	}

	if result.DryRun {
		fmt.Println("Dry run: no changes were written")
	}
	fmt.Printf("Organizations: %d\n", result.Organizations)
	fmt.Printf("Roles created: %d (already present: %d)\n", result.RolesCreated, result.RolesExisting)
	return nil
}
