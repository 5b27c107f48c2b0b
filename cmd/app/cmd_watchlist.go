package main

import (
	"context"

	"github.com/spf13/cobra"

	"TokenScope/pkg/client"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage the token watchlist",
	Long: `Manage the token watchlist. While the primary API is unavailable the
watchlist is kept in the configured local store (memory or redis); use the
redis backend for a watchlist that survives between invocations.`,
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List watched tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res := c.GetWatchlist(ctx)
			return render(cmd.OutOrStdout(), res, c.IsUsingFallback(), func() { printWatchlist(cmd.OutOrStdout(), res.Data) })
		})
	},
}

var watchlistNote string

var watchlistAddCmd = &cobra.Command{
	Use:   "add <chain> <address>",
	Short: "Watch a token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res := c.AddToWatchlist(ctx, args[0], args[1], watchlistNote)
			return render(cmd.OutOrStdout(), res, c.IsUsingFallback(), func() { printDone(cmd.OutOrStdout(), "added", args[0], args[1]) })
		})
	},
}

var watchlistRemoveCmd = &cobra.Command{
	Use:     "remove <chain> <address>",
	Aliases: []string{"rm"},
	Short:   "Stop watching a token",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res := c.RemoveFromWatchlist(ctx, args[0], args[1])
			return render(cmd.OutOrStdout(), res, c.IsUsingFallback(), func() { printDone(cmd.OutOrStdout(), "removed", args[0], args[1]) })
		})
	},
}

func init() {
	watchlistAddCmd.Flags().StringVar(&watchlistNote, "note", "", "Free-form note")
	watchlistCmd.AddCommand(watchlistListCmd, watchlistAddCmd, watchlistRemoveCmd)
	rootCmd.AddCommand(watchlistCmd)
}
