package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"animebot/pkg/bot"
	"animebot/pkg/format"
	"animebot/pkg/jikan"

	"github.com/spf13/cobra"
)

// The lookup commands run the same requests as the chat commands and print the
// plain-text rendering of the result.

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search anime by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		client := jikan.NewClient(cfg.API.BaseURL, cfg.API.UserAgent, log)
		return printSearch(cmd.Context(), cmd.OutOrStdout(), client, strings.Join(args, " "), cfg.API.SearchLimit)
	},
}

var detailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show details for an anime by MAL ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		client := jikan.NewClient(cfg.API.BaseURL, cfg.API.UserAgent, log)
		return printDetails(cmd.Context(), cmd.OutOrStdout(), client, id)
	},
}

var recommendationsCmd = &cobra.Command{
	Use:   "recommendations <id>",
	Short: "Show recommendations for an anime by MAL ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		client := jikan.NewClient(cfg.API.BaseURL, cfg.API.UserAgent, log)
		return printRecommendations(cmd.Context(), cmd.OutOrStdout(), client, id)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd, detailsCmd, recommendationsCmd)
}

func parseID(arg string) (int, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid anime ID %q: must be a positive number", arg)
	}
	return int(id), nil
}

func printSearch(ctx context.Context, w io.Writer, client bot.AnimeClient, query string, limit int) error {
	results, err := client.SearchAnime(ctx, query, limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		_, err = fmt.Fprintln(w, format.NoResults(query))
		return err
	}
	_, err = fmt.Fprintln(w, format.FormatSearchResults(query, results).PlainText())
	return err
}

func printDetails(ctx context.Context, w io.Writer, client bot.AnimeClient, id int) error {
	detail, err := client.GetDetails(ctx, id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, format.FormatDetails(detail).PlainText())
	return err
}

func printRecommendations(ctx context.Context, w io.Writer, client bot.AnimeClient, id int) error {
	entries, err := client.GetRecommendations(ctx, id)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err = fmt.Fprintln(w, format.NoRecommendations(id))
		return err
	}
	_, err = fmt.Fprintln(w, format.FormatRecommendations(id, entries).PlainText())
	return err
}
