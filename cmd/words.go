package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wordnik/wordnik"
)

var (
	randomCount int
	wotdDate    string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search words matching a query",
	Long: `Search the Wordnik word graph. Wildcards (*) are supported in the query.
Results are case sensitive unless -P caseSensitive=false is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWithParams(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		return client.Search(ctx, strings.Join(args, " "), params)
	}),
}

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random word",
	Long:  `Show a random word with a dictionary definition, or several with --count.`,
	Args:  cobra.NoArgs,
	RunE: runWithParams(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		if randomCount > 0 {
			return client.RandomWords(ctx, params.Set("limit", randomCount))
		}
		return client.RandomWord(ctx, params)
	}),
}

// wotdCmd represents the wotd command
var wotdCmd = &cobra.Command{
	Use:   "wotd",
	Short: "Show the word of the day",
	Args:  cobra.NoArgs,
	RunE: runWithParams(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		if wotdDate != "" {
			date, err := time.Parse(wordnik.DateFormat, wotdDate)
			if err != nil {
				return nil, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", wotdDate)
			}
			params = params.Set("date", date)
		}
		return client.WordOfTheDay(ctx, params)
	}),
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(wotdCmd)
	summaries[wotdCmd] = summarizeWordOfTheDay

	randomCmd.Flags().IntVar(&randomCount, "count", 0, "number of random words to return")
	wotdCmd.Flags().StringVar(&wotdDate, "date", "", "date of the word of the day (YYYY-MM-DD)")
}
