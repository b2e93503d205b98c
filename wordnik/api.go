package wordnik

import (
	"context"
)

// API defines the interface for Wordnik operations
type API interface {
	// Authenticate logs a user in and keeps the session token for later calls
	Authenticate(ctx context.Context, username, password string) (JSON, error)
	APITokenStatus(ctx context.Context, params Params) (JSON, error)
	User(ctx context.Context, params Params) (JSON, error)
	WordLists(ctx context.Context, params Params) (JSON, error)

	// Word operations
	Word(ctx context.Context, word string, params Params) (JSON, error)
	Definitions(ctx context.Context, word string, params Params) (JSON, error)
	Examples(ctx context.Context, word string, params Params) (JSON, error)
	TopExample(ctx context.Context, word string, params Params) (JSON, error)
	Pronunciations(ctx context.Context, word string, params Params) (JSON, error)
	Hyphenation(ctx context.Context, word string, params Params) (JSON, error)
	Frequency(ctx context.Context, word string, params Params) (JSON, error)
	Phrases(ctx context.Context, word string, params Params) (JSON, error)
	RelatedWords(ctx context.Context, word string, params Params) (JSON, error)
	Audio(ctx context.Context, word string, params Params) (JSON, error)

	// Words operations
	Search(ctx context.Context, query string, params Params) (JSON, error)
	RandomWord(ctx context.Context, params Params) (JSON, error)
	RandomWords(ctx context.Context, params Params) (JSON, error)
	WordOfTheDay(ctx context.Context, params Params) (JSON, error)

	// Word list operations, all of which require Authenticate
	WordList(ctx context.Context, listID string, params Params) (JSON, error)
	WordListWords(ctx context.Context, listID string, params Params) (JSON, error)
	AddWordsToList(ctx context.Context, listID string, words []string, params Params) (JSON, error)
	UpdateList(ctx context.Context, listID string, words []string, params Params) (JSON, error)
	DeleteList(ctx context.Context, listID string, params Params) (JSON, error)
}

var _ API = (*Client)(nil)
