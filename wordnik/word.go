package wordnik

import "context"

// wordResource fetches /word.json/{word}{resource}
func (c *Client) wordResource(ctx context.Context, op, word, resource string, params Params) (JSON, error) {
	if err := requireString(op, "word", word); err != nil {
		return nil, err
	}
	return c.get(ctx, op, "/word.json/"+segment(word)+resource, params)
}

// Word looks up a word.
// Params: useCanonical, includeSuggestions.
func (c *Client) Word(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "Word", word, "", params)
}

// Definitions returns the definitions of a word.
// Params: limit, partOfSpeech, includeRelated, sourceDictionaries, useCanonical, includeTags.
func (c *Client) Definitions(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "Definitions", word, "/definitions", params)
}

// Examples returns usage examples of a word.
// Params: includeDuplicates, contentProvider, useCanonical, skip, limit.
func (c *Client) Examples(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "Examples", word, "/examples", params)
}

// TopExample returns the single best example of a word.
// Params: contentProvider, useCanonical.
func (c *Client) TopExample(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "TopExample", word, "/topExample", params)
}

// Pronunciations returns text pronunciations of a word.
// Params: useCanonical, sourceDictionary, typeFormat, limit.
func (c *Client) Pronunciations(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "Pronunciations", word, "/pronunciations", params)
}

// Hyphenation returns syllable information of a word.
// Params: useCanonical, sourceDictionary, limit.
func (c *Client) Hyphenation(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "Hyphenation", word, "/hyphenation", params)
}

// Frequency returns usage counts of a word by year.
// Params: useCanonical, startYear, endYear.
func (c *Client) Frequency(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "Frequency", word, "/frequency", params)
}

// Phrases returns bi-gram phrases containing a word.
// Params: limit, wlmi, useCanonical.
func (c *Client) Phrases(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "Phrases", word, "/phrases", params)
}

// RelatedWords returns synonyms, antonyms and other relations of a word.
// Params: partOfSpeech, sourceDictionary, limit, useCanonical, type.
func (c *Client) RelatedWords(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "RelatedWords", word, "/related", params)
}

// Audio returns audio pronunciation metadata of a word.
// Params: useCanonical, limit.
func (c *Client) Audio(ctx context.Context, word string, params Params) (JSON, error) {
	return c.wordResource(ctx, "Audio", word, "/audio", params)
}
