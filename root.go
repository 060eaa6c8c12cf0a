package main

import (
	"fmt"
	"os"

	"animebot/pkg/config"
	"animebot/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

// rootCmd runs the bot when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "animebot",
	Short: "A Discord bot for looking up anime",
	Long: `animebot answers chat commands with anime search results, details and
recommendations fetched from the Jikan API (MyAnimeList data).

Running it without a subcommand starts the bot, same as "animebot run".`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runBot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yml", "config file")
}

// setup loads .env, config.yml and the root logger shared by every subcommand.
func setup() (*config.Config, zerolog.Logger, error) {
	// Load .env for secrets
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	log := logger.New(cfg.Log.Level)
	if envErr != nil {
		log.Debug().Msg("No .env file found, relying on environment variables")
	}
	return cfg, log, nil
}
