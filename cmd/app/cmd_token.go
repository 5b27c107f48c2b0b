package main

import (
	"context"

	"github.com/spf13/cobra"

	"TokenScope/pkg/client"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <chain> <address>",
	Short: "Full market and risk analysis of a token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res := c.Analyze(ctx, args[0], args[1])
			return render(cmd.OutOrStdout(), res, c.IsUsingFallback(), func() { printAnalysis(cmd.OutOrStdout(), res.Data) })
		})
	},
}

var signalsCmd = &cobra.Command{
	Use:   "signals <chain> <address>",
	Short: "Risk signals of a token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res := c.GetSignals(ctx, args[0], args[1])
			return render(cmd.OutOrStdout(), res, c.IsUsingFallback(), func() { printSignals(cmd.OutOrStdout(), res.Data) })
		})
	},
}

var contractCmd = &cobra.Command{
	Use:   "contract <chain> <address>",
	Short: "Contract security summary of a token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res := c.GetContract(ctx, args[0], args[1])
			return render(cmd.OutOrStdout(), res, c.IsUsingFallback(), func() { printContract(cmd.OutOrStdout(), res.Data) })
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tokens by name, symbol or address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res := c.Search(ctx, args[0])
			return render(cmd.OutOrStdout(), res, c.IsUsingFallback(), func() { printSummaries(cmd.OutOrStdout(), res.Data) })
		})
	},
}

var trendingChain string

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Trending tokens, optionally for one chain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *client.Client) error {
			res := c.GetTrending(ctx, trendingChain)
			return render(cmd.OutOrStdout(), res, c.IsUsingFallback(), func() { printTrending(cmd.OutOrStdout(), res.Data) })
		})
	},
}

func init() {
	trendingCmd.Flags().StringVar(&trendingChain, "chain", "", "Restrict to one chain (e.g. solana, bsc)")
	rootCmd.AddCommand(analyzeCmd, signalsCmd, contractCmd, searchCmd, trendingCmd)
}
