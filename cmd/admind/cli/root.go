package cli

import (
	"adminpanel/pkg/config"
	"adminpanel/pkg/log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

// NewRootCommand builds the admind root command.
func NewRootCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "admind",
		Short:         "Admin panel service",
		Long:          "HTTP service managing systems, categories, content areas and downloadable files behind an authenticated admin API.",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is fine; explicit config still applies
			_ = godotenv.Load()

			if debug {
				log.SetDebugMode()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is ./admind.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

// loadConfig reads the configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cfg.Log.Debug {
		log.SetDebugMode()
	}

	return cfg, nil
}
