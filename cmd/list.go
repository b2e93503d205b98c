package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wordnik/wordnik"
)

// listCmd groups the word list commands
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"wordlist"},
	Short:   "Read and change word lists",
	Long: `Read and change the word lists of the logged in user. Lists are addressed
by their permalink, as shown by "wordnik account lists".`,
}

var listGetCmd = &cobra.Command{
	Use:   "get <list>",
	Short: "Show a word list",
	Args:  cobra.ExactArgs(1),
	RunE: runWithParams(withLogin(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		return client.WordList(ctx, args[0], params)
	})),
}

var listWordsCmd = &cobra.Command{
	Use:   "words <list>",
	Short: "List the words of a word list, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: runWithParams(withLogin(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		return client.WordListWords(ctx, args[0], params)
	})),
}

var listAddCmd = &cobra.Command{
	Use:   "add <list> <word>...",
	Short: "Add words to a word list",
	Args:  cobra.MinimumNArgs(2),
	RunE: runWithParams(withLogin(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		return client.AddWordsToList(ctx, args[0], args[1:], params)
	})),
}

var listReplaceCmd = &cobra.Command{
	Use:   "replace <list> [word]...",
	Short: "Replace the words of a word list",
	Long:  `Replace the words of a word list. With no words the list is emptied.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: runWithParams(withLogin(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		words := append([]string{}, args[1:]...)
		return client.UpdateList(ctx, args[0], words, params)
	})),
}

var listDeleteCmd = &cobra.Command{
	Use:   "delete <list>",
	Short: "Delete a word list",
	Args:  cobra.ExactArgs(1),
	RunE: runWithParams(withLogin(func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		return client.DeleteList(ctx, args[0], params)
	})),
}

func init() {
	listCmd.AddCommand(listGetCmd)
	listCmd.AddCommand(listWordsCmd)
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listReplaceCmd)
	listCmd.AddCommand(listDeleteCmd)
	rootCmd.AddCommand(listCmd)
	summaries[listGetCmd] = summarizeWordList
}

// withLogin authenticates before running call
func withLogin(call func(context.Context, []string, wordnik.Params) (wordnik.JSON, error)) func(context.Context, []string, wordnik.Params) (wordnik.JSON, error) {
	return func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error) {
		if err := ensureLogin(ctx); err != nil {
			return nil, err
		}
		return call(ctx, args, params)
	}
}
