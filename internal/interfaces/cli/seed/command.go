// Package seed implements the `seed` CLI command: it provisions the first
// super admin account and, optionally, a demo tenant to explore the API.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tavolo/internal/domain/access"
	domainrestaurant "tavolo/internal/domain/restaurant"
	domainsub "tavolo/internal/domain/subscription"
	"tavolo/internal/domain/user"
	"tavolo/internal/infrastructure/auth"
	"tavolo/internal/infrastructure/config"
	"tavolo/internal/infrastructure/database"
	"tavolo/internal/infrastructure/migration"
	"tavolo/internal/infrastructure/repository"
	"tavolo/internal/shared/logger"
)

var (
	env       string
	adminMail string
	withDemo  bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database",
		Long:  `Create the initial super admin account and optionally a demo restaurant with an owner and a starter subscription.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&adminMail, "admin-email", "admin@example.com", "Email for the super admin account")
	cmd.Flags().BoolVar(&withDemo, "demo", false, "Also create a demo restaurant with owner and subscription")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.NewManager(env, log).Migrate(database.Get()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.Password.BcryptCost)
	users := repository.NewUserRepository(database.Get(), log)
	ctx := context.Background()

	password, err := promptPassword(adminMail)
	if err != nil {
		return err
	}

	admin, err := seedAdmin(ctx, users, hasher, adminMail, password)
	if err != nil {
		return err
	}
	log.Infow("super admin ready", "email", adminMail)

	if withDemo {
		if err := seedDemo(ctx, log, hasher, password, admin.ID()); err != nil {
			return err
		}
	}

	return nil
}

func seedAdmin(ctx context.Context, users user.Repository, hasher *auth.PasswordHasher, email, password string) (*user.User, error) {
	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user %s already exists", email)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	admin, err := user.NewUser(email, hash, access.RoleSuperAdmin, 0)
	if err != nil {
		return nil, err
	}

	if err := users.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// seedDemo creates a demo restaurant, its owner account (same password as
// the admin) and an active starter subscription. The admin is recorded as
// the restaurant's creator until the owner claims it.
func seedDemo(ctx context.Context, log logger.Interface, hasher *auth.PasswordHasher, password string, adminID uint) error {
	db := database.Get()
	users := repository.NewUserRepository(db, log)
	restaurants := repository.NewRestaurantRepository(db, log)
	subscriptions := repository.NewSubscriptionRepository(db, log)

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	demo, err := domainrestaurant.NewRestaurant("Demo Trattoria", "demo-trattoria", "1 Demo Street", "+1 555 0100", adminID)
	if err != nil {
		return err
	}
	if err := restaurants.Create(ctx, demo); err != nil {
		return err
	}

	owner, err := user.NewUser("owner@demo-trattoria.example", hash, access.RoleOwner, demo.ID())
	if err != nil {
		return err
	}
	if err := users.Create(ctx, owner); err != nil {
		return err
	}

	sub, err := domainsub.NewSubscription(demo.ID(), domainsub.PlanStarter, domainsub.StatusActive)
	if err != nil {
		return err
	}
	if err := subscriptions.Upsert(ctx, sub); err != nil {
		return err
	}

	log.Infow("demo tenant created",
		"restaurant_id", demo.ID(),
		"slug", demo.Slug(),
		"owner_email", owner.Email())
	return nil
}

func promptPassword(email string) (string, error) {
	fmt.Printf("Password for %s: ", email)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		// Not a terminal: fall back to the SEED_PASSWORD environment variable
		if fallback := strings.TrimSpace(os.Getenv("SEED_PASSWORD")); fallback != "" {
			return fallback, nil
		}
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimSpace(string(raw))
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}
	return password, nil
}
