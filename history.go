package main

import (
	"fmt"

	"animebot/pkg/config"
	"animebot/pkg/querylog"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <user-id>",
	Short: "Print the recorded search queries of a Discord user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		secrets, err := config.LoadStoreSecrets()
		if err != nil {
			return err
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

		queries, err := store.Queries(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(queries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No queries recorded for user %s.\n", args[0])
			return nil
		}
		for i, q := range queries {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
