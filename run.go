package main

import (
	"os"
	"os/signal"
	"syscall"

	"animebot/pkg/bot"
	"animebot/pkg/config"
	"animebot/pkg/jikan"
	"animebot/pkg/querylog"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and answer commands",
	Long: `Run connects to the Discord gateway and handles !help, !anime and !lain
commands until interrupted. DISCORD_TOKEN must be set in the environment or .env.`,
	RunE: runBot,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	secrets, err := config.LoadSecrets()
	if err != nil {
		return errors.Wrap(err, "missing required environment")
	}

	store, closeStore, err := querylog.Open(querylog.Options{
		Backend:     cfg.QueryLog.Backend,
		Path:        cfg.QueryLog.Path,
		RedisURL:    secrets.RedisURL,
		RedisPrefix: cfg.QueryLog.RedisPrefix,
	}, log)
	if err != nil {
		return err
	}
	defer closeStore()

	client := jikan.NewClient(cfg.API.BaseURL, cfg.API.UserAgent, log)
	handler := bot.NewHandler(client, store, bot.Options{
		SearchLimit:    cfg.API.SearchLimit,
		FixedSubjectID: cfg.Bot.FixedSubjectID,
		RichMessages:   cfg.Bot.RichMessages,
	}, log)

	// Create Discord Session
	dg, err := discordgo.New("Bot " + secrets.DiscordToken)
	if err != nil {
		return errors.Wrap(err, "error creating Discord session")
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	dg.AddHandler(handler.MessageCreate)

	if err := dg.Open(); err != nil {
		return errors.Wrap(err, "error opening connection")
	}
	defer dg.Close()

	if err := bot.SetStatus(dg, cfg.Bot.Status); err != nil {
		log.Warn().Err(err).Msg("Error setting status")
	}

	log.Info().
		Str("backend", cfg.QueryLog.Backend).
		Int("fixed_subject", cfg.Bot.FixedSubjectID).
		Msg("Bot is now running. Press CTRL-C to exit.")

	// Wait for signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info().Msg("Shutting down")
	return nil
}
