package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"TokenScope/pkg/client"
)

func render[T any](w io.Writer, res client.Result[T], fallback bool, pretty func()) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
		if !res.Success {
			return errors.New(res.Error)
		}
		return nil
	}
	if !res.Success {
		return errors.New(res.Error)
	}
	pretty()
	if fallback {
		fmt.Fprintln(os.Stderr, "note: primary API unavailable, answered from DexScreener/GoPlus")
	}
	return nil
}

func usd(v float64) string {
	switch {
	case v == 0:
		return "$0"
	case math.Abs(v) < 1:
		return "$" + humanize.FtoaWithDigits(v, 8)
	case math.Abs(v) < 1e6:
		return "$" + humanize.CommafWithDigits(v, 2)
	default:
		return "$" + humanize.SIWithDigits(v, 2, "")
	}
}

func pct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

func printAnalysis(w io.Writer, a *client.AnalysisResult) {
	if a == nil {
		return
	}
	fmt.Fprintf(w, "%s (%s) on %s\n", a.Token.Name, a.Token.Symbol, a.Token.Chain)
	fmt.Fprintf(w, "  address     %s\n", a.Token.Address)
	fmt.Fprintf(w, "  price       %s  (5m %s  1h %s  6h %s  24h %s)\n",
		usd(a.Price), pct(a.PriceChange.M5), pct(a.PriceChange.H1), pct(a.PriceChange.H6), pct(a.PriceChange.H24))
	fmt.Fprintf(w, "  volume 24h  %s\n", usd(a.Volume.H24))
	fmt.Fprintf(w, "  liquidity   %s\n", usd(a.Liquidity))
	fmt.Fprintf(w, "  txns 24h    %s buys / %s sells\n",
		humanize.Comma(int64(a.Txns24h.Buys)), humanize.Comma(int64(a.Txns24h.Sells)))
	if a.MarketCap != nil {
		fmt.Fprintf(w, "  market cap  %s\n", usd(*a.MarketCap))
	}
	if a.FDV != nil {
		fmt.Fprintf(w, "  fdv         %s\n", usd(*a.FDV))
	}
	if a.Contract != nil {
		fmt.Fprintln(w)
		printContract(w, a.Contract)
	}
	fmt.Fprintf(w, "\nrisk score %d/100 (%s)\n", a.RiskScore, humanize.Time(a.Timestamp))
	if len(a.Signals) > 0 {
		printSignals(w, a.Signals)
	}
}

func printContract(w io.Writer, c *client.ContractSecurity) {
	if c == nil {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "contract\tverified=%t\trenounced=%t\thoneypot=%t\n", c.Verified, c.Renounced, c.Honeypot)
	fmt.Fprintf(tw, "\tmintable=%t\tpausable=%t\tblacklist=%t\n", c.Mintable, c.Pausable, c.Blacklist)
	fmt.Fprintf(tw, "\tbuy tax=%.1f%%\tsell tax=%.1f%%\t\n", c.BuyTax, c.SellTax)
	_ = tw.Flush()
}

func printSignals(w io.Writer, signals []client.Signal) {
	if len(signals) == 0 {
		fmt.Fprintln(w, "no risk signals")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range signals {
		fmt.Fprintf(tw, "  [%s]\t%s\t%s\n", s.Severity, s.Title, s.Summary)
	}
	_ = tw.Flush()
}

func printSummaries(w io.Writer, tokens []client.TokenSummary) {
	if len(tokens) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAIN\tSYMBOL\tPRICE\t24H\tVOLUME 24H\tLIQUIDITY\tADDRESS")
	for _, t := range tokens {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Token.Chain, t.Token.Symbol, usd(t.Price), pct(t.PriceChange24h),
			usd(t.Volume24h), usd(t.Liquidity), t.Token.Address)
	}
	_ = tw.Flush()
}

func printTrending(w io.Writer, tokens []client.TrendingToken) {
	if len(tokens) == 0 {
		fmt.Fprintln(w, "nothing trending")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCHAIN\tBOOST\tADDRESS")
	for i, t := range tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, t.Chain, humanize.Commaf(t.Boost), t.Address)
	}
	_ = tw.Flush()
}

func printWatchlist(w io.Writer, entries []client.WatchlistEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "watchlist is empty")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAIN\tADDRESS\tADDED\tNOTE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Chain, e.Address, humanize.Time(e.AddedAt), e.Note)
	}
	_ = tw.Flush()
}

func printDone(w io.Writer, verb, chain, address string) {
	fmt.Fprintf(w, "%s %s:%s\n", verb, chain, address)
}
