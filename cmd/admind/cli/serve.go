package cli

import (
	"fmt"

	"adminpanel/pkg/auth"
	"adminpanel/pkg/blobstore"
	"adminpanel/pkg/database"
	"adminpanel/pkg/downloads"
	"adminpanel/pkg/log"
	"adminpanel/pkg/server"

	"github.com/spf13/cobra"
)

// NewServeCommand builds the serve subcommand.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the admin panel HTTP server",

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.Auth.JWTSecret == "" {
				return fmt.Errorf("auth.jwt_secret must be configured (ADMIND_AUTH_JWT_SECRET)")
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

			blobs := blobstore.New(cfg.Storage.UploadsDir)
			orch := downloads.New(db, blobs)
			gate := auth.NewGate(db, auth.NewMemoryStore(), []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)

			log.Info().
				Str("database", cfg.Database.Path).
				Str("uploads_dir", cfg.Storage.UploadsDir).
				Msg("Stores initialized")

			srv := server.New(db, orch, gate, cfg.Server.ShutdownTimeout)
			return srv.Start(cfg.Server.Addr)
		},
	}
}
