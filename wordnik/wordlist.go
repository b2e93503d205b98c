package wordnik

import (
	"context"
	"net/http"
)

// wordListPath validates listID and the session before building the list path
func (c *Client) wordListPath(op, listID string) (string, error) {
	if err := requireString(op, "wordListId", listID); err != nil {
		return "", err
	}
	if err := c.ensureAuthenticated(op); err != nil {
		return "", err
	}
	return "/wordList.json/" + segment(listID), nil
}

// WordList fetches a word list by permalink.
func (c *Client) WordList(ctx context.Context, listID string, params Params) (JSON, error) {
	path, err := c.wordListPath("WordList", listID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "WordList", path, params)
}

// WordListWords fetches the words of a word list.
// Params: sortBy (default "createDate"), sortOrder (default "desc"), skip, limit.
func (c *Client) WordListWords(ctx context.Context, listID string, params Params) (JSON, error) {
	path, err := c.wordListPath("WordListWords", listID)
	if err != nil {
		return nil, err
	}
	params = params.withDefaults(Params{"sortBy": "createDate", "sortOrder": "desc"})
	return c.get(ctx, "WordListWords", path+"/words", params)
}

// AddWordsToList appends words to a word list. A nil words slice is rejected,
// an empty one is sent as [].
func (c *Client) AddWordsToList(ctx context.Context, listID string, words []string, params Params) (JSON, error) {
	const op = "AddWordsToList"
	if words == nil {
		return nil, &ValidationError{Operation: op, Param: "words"}
	}
	path, err := c.wordListPath(op, listID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, request{op: op, method: http.MethodPost, path: path + "/words", params: params, body: wordRecords(words)})
}

// UpdateList replaces the contents of a word list with words.
func (c *Client) UpdateList(ctx context.Context, listID string, words []string, params Params) (JSON, error) {
	const op = "UpdateList"
	if words == nil {
		return nil, &ValidationError{Operation: op, Param: "words"}
	}
	path, err := c.wordListPath(op, listID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, request{op: op, method: http.MethodPut, path: path, params: params, body: wordRecords(words)})
}

// DeleteList deletes a word list.
func (c *Client) DeleteList(ctx context.Context, listID string, params Params) (JSON, error) {
	const op = "DeleteList"
	path, err := c.wordListPath(op, listID)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, request{op: op, method: http.MethodDelete, path: path, params: params})
}
