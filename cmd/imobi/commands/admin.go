package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmendes/imobi/internal/cli/output"
	"github.com/rmendes/imobi/internal/cli/prompt"
	"github.com/rmendes/imobi/internal/models"
	"github.com/rmendes/imobi/internal/store"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage user accounts",
	Long: `Manage the user accounts of the imobi server.

Subcommands:
  seed            Create the administrator account if it does not exist
  list            List all registered users
  passwd <email>  Change a user's password

Examples:
  imobi admin seed
  imobi admin list
  imobi admin passwd maria@example.com`,
}

var adminSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the administrator account if missing",
	RunE:  runAdminSeed,
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered users",
	RunE:  runAdminList,
}

var adminPasswdCmd = &cobra.Command{
	Use:   "passwd <email>",
	Short: "Change a user's password",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminPasswd,
}

func init() {
	adminCmd.AddCommand(adminSeedCmd)
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminPasswdCmd)
}

func runAdminSeed(cmd *cobra.Command, args []string) error {
	_, s, err := loadConfigAndStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := context.Background()

	generated, err := s.EnsureAdminUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if generated == "" {
		fmt.Println("Administrator account already exists, nothing to do.")
		return nil
	}

	fmt.Printf("Administrator account created (%s)\n", store.AdminEmail)
	fmt.Printf("Generated password: %s\n", generated)
	fmt.Println("Store it now - it will not be shown again.")
	return nil
}

func runAdminList(cmd *cobra.Command, args []string) error {
	_, s, err := loadConfigAndStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	users, err := s.ListUsers(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	table := output.NewTable("ID", "Name", "Email", "Role", "Last login")
	for _, u := range users {
		lastLogin := "never"
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.Format("2006-01-02 15:04")
		}
		table.AddRow(fmt.Sprint(u.ID), u.Name, u.Email, string(u.Role), lastLogin)
	}
	table.Render(os.Stdout)

	return nil
}

func runAdminPasswd(cmd *cobra.Command, args []string) error {
	email := args[0]

	_, s, err := loadConfigAndStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := context.Background()

	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user %q: %w", email, err)
	}

	password, err := prompt.NewPassword()
	if err != nil {
		return err
	}
	if err := models.ValidatePassword(password); err != nil {
		return err
	}

	if err := s.UpdatePassword(ctx, user.ID, password); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	fmt.Printf("Password updated for %s\n", user.Email)
	return nil
}
