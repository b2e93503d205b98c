package wordnik

import "context"

// Search finds words matching query.
// Params: caseSensitive (default "true"), includePartOfSpeech, excludePartOfSpeech,
// minCorpusCount, maxCorpusCount, minDictionaryCount, maxDictionaryCount,
// minLength, maxLength, skip (default 0), limit (default 10).
func (c *Client) Search(ctx context.Context, query string, params Params) (JSON, error) {
	if err := requireString("Search", "query", query); err != nil {
		return nil, err
	}
	params = params.withDefaults(Params{"caseSensitive": "true", "skip": 0, "limit": 10})
	return c.get(ctx, "Search", "/words.json/search/"+segment(query), params)
}

// RandomWord returns a single random word.
// Params: hasDictionaryDef (default "true"), includePartOfSpeech, excludePartOfSpeech,
// minCorpusCount, maxCorpusCount, minDictionaryCount, maxDictionaryCount, minLength, maxLength.
func (c *Client) RandomWord(ctx context.Context, params Params) (JSON, error) {
	params = params.withDefaults(Params{"hasDictionaryDef": "true"})
	return c.get(ctx, "RandomWord", "/words.json/randomWord", params)
}

// RandomWords returns a list of random words.
// Params: as RandomWord plus sortBy, sortOrder, limit.
func (c *Client) RandomWords(ctx context.Context, params Params) (JSON, error) {
	return c.get(ctx, "RandomWords", "/words.json/randomWords", params)
}

// WordOfTheDay returns the word of the day.
// Params: date (YYYY-MM-DD), category, creator.
func (c *Client) WordOfTheDay(ctx context.Context, params Params) (JSON, error) {
	return c.get(ctx, "WordOfTheDay", "/words.json/wordOfTheDay", params)
}
