package main

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/nyumbani/homemanager/pkg/db"
	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
	gormstore "github.com/nyumbani/homemanager/pkg/server/store/gorm"
)

// orgCreateCmd represents the org create command
var orgCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an organization with its owner",
	Long: `Create an organization and bootstrap its owner membership.

The owner is looked up by email. If no account exists for the email, one
is created with a generated password which is printed to STDOUT.

Example:
  homectl org create "Acme Properties" --owner-email owner@acme.example`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		ownerEmail, _ := cmd.Flags().GetString("owner-email")
		if ownerEmail == "" {
			fmt.Fprintln(os.Stderr, "--owner-email is required")
			os.Exit(1)
		}

		if err := createOrganization(name, ownerEmail); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create organization: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	orgCmd.AddCommand(orgCreateCmd)
	orgCreateCmd.Flags().StringP("owner-email", "e", "", "Email of the owner account")
}

func createOrganization(name, ownerEmail string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	users := gormstore.NewUsersStore(database)

	owner, err := users.GetByEmail(ownerEmail)
	if errors.Is(err, store.ErrNotFound) {
		owner, err = createOwnerAccount(users, ownerEmail)
	}
	if err != nil {
		return err
	}
	if owner.OrganizationID != nil {
		return fmt.Errorf("user %s already belongs to an organization", ownerEmail)
	}

	org := &model.Organization{
		Name:           name,
		Email:          ownerEmail,
		PrimaryOwnerID: &owner.ID,
	}
	if err := gormstore.NewOrganizationsStore(database).Create(org); err != nil {
		return err
	}
	if err := users.BindToOrganization(owner.ID, org.ID); err != nil {
		return err
	}

	ownerRole, err := gormstore.NewBaseRolesStore(database).GetBySlug("owner")
	if err != nil {
		return fmt.Errorf("owner base role is missing, run 'homectl roles seed' first: %w", err)
	}
	orgRole, err := gormstore.NewOrgRolesStore(database).GetOrCreate(org.ID, ownerRole.ID)
	if err != nil {
		return err
	}
	if _, err := gormstore.NewMembershipsStore(database).Create(org.ID, owner.ID, orgRole.ID, false); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created organization '%s' (slug: %s)\n", org.Name, org.Slug)
	return nil
}

func createOwnerAccount(users store.UsersStore, email string) (*model.User, error) {
	password, err := generatePassword()
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:           email,
		Username:        email,
		PasswordHash:    string(hash),
		IsPropertyOwner: true,
	}
	if err := users.Create(user); err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "Created new account '%s'\n", email)
	fmt.Printf("Password for %s: %s\n", email, password)
	return user, nil
}

func generatePassword() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
