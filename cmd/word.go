package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wordnik/wordnik"
)

// wordLookup is a per-word endpoint exposed as a subcommand
type wordLookup struct {
	use     string
	short   string
	call    func(c *wordnik.Client, ctx context.Context, word string, params wordnik.Params) (wordnik.JSON, error)
	summary summarizer
}

var wordLookups = []wordLookup{
	{"word", "Look up a word", (*wordnik.Client).Word, summarizeWord},
	{"definitions", "List definitions of a word", (*wordnik.Client).Definitions, summarizeDefinitions},
	{"examples", "List usage examples of a word", (*wordnik.Client).Examples, summarizeExamples},
	{"top-example", "Show the top usage example of a word", (*wordnik.Client).TopExample, summarizeTopExample},
	{"pronunciations", "List pronunciations of a word", (*wordnik.Client).Pronunciations, nil},
	{"hyphenation", "Show the syllables of a word", (*wordnik.Client).Hyphenation, nil},
	{"frequency", "Show how often a word was used per year", (*wordnik.Client).Frequency, nil},
	{"phrases", "List bi-gram phrases containing a word", (*wordnik.Client).Phrases, nil},
	{"related", "List words related to a word (synonyms, antonyms, ...)", (*wordnik.Client).RelatedWords, nil},
	{"audio", "List audio pronunciations of a word", (*wordnik.Client).Audio, nil},
}

func init() {
	for _, l := range wordLookups {
		rootCmd.AddCommand(newWordCommand(l))
	}
}

func newWordCommand(l wordLookup) *cobra.Command {
	cmd := &cobra.Command{
		Use:     l.use + " <word>",
		Short:   l.short,
		Args:    cobra.MinimumNArgs(1),
		Example: "  wordnik " + l.use + " donkey",
		RunE: runWithParams(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
			// Unquoted phrases arrive as several args
			return l.call(client, ctx, strings.Join(args, " "), params)
		}),
	}
	if l.summary != nil {
		summaries[cmd] = l.summary
	}
	return cmd
}
