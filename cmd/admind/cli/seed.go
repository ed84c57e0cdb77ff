package cli

import (
	"fmt"

	"adminpanel/pkg/auth"
	"adminpanel/pkg/database"
	"adminpanel/pkg/log"

	"github.com/spf13/cobra"
)

// NewSeedCommand builds the seed subcommand. Seeding is idempotent:
// re-running it resets the password of an existing user.
func NewSeedCommand() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create or update an administrative user",

		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error().Err(err).Msg("Failed to close database")
				}
			}()

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			userRecord, err := db.UpsertUser(username, hash)
			if err != nil {
				return err
			}

			log.Info().Str("username", userRecord.Username).Int64("id", userRecord.ID).Msg("Admin user seeded")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username of the admin account")
	cmd.Flags().StringVar(&password, "password", "", "password of the admin account")

	return cmd
}
