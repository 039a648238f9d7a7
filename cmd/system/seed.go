package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/healhub/healhub_backend/config"
	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/internal/repo"
	"github.com/healhub/healhub_backend/pkg/supabase"
	"github.com/healhub/healhub_backend/pkg/util/password"
)

// NewSeedAdminCommand creates the initial admin account. Safe to run
// repeatedly: an existing account with the same email is left alone.
func NewSeedAdminCommand() *cobra.Command {
	var (
		email string
		pass  string
	)

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the initial admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := supabase.New(cfg.Supabase)
			if err != nil {
				return err
			}
			users := repo.NewUsers(client)

			ctx := cmd.Context()
			existing, err := users.GetByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("failed to check for existing user: %w", err)
			}
			if existing != nil {
				fmt.Printf("User %s already exists, nothing to do.\n", email)
				return nil
			}

			hash, err := password.Hash(pass)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			created, err := users.Insert(ctx, entity.NewUser{
				Email:        email,
				PasswordHash: hash,
				Role:         "admin",
				IsVerified:   true,
				IsActive:     true,
			})
			if err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}

			fmt.Printf("Admin user created: %s (%s)\n", created.Email, created.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVar(&pass, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
