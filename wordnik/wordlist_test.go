package wordnik

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authenticatedClient returns a client that already holds a session token
func authenticatedClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	client, _ := newTestClient(t, handler, WithSessionToken("session-123"))
	return client
}

func TestClient_AddWordsToList(t *testing.T) {
	client := authenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wordList.json/my-list/words", r.URL.Path)
		assert.Equal(t, "session-123", r.Header.Get("auth_token"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"word":"foo"},{"word":"bar"}]`, string(body))
		w.WriteHeader(http.StatusOK)
	})

	result, err := client.AddWordsToList(context.Background(), "my-list", []string{"foo", "bar"}, nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestClient_UpdateList(t *testing.T) {
	client := authenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/wordList.json/my-list", r.URL.Path)
		assert.Equal(t, int64(len(`[{"word":"baz"}]`)), r.ContentLength)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"word":"baz"}]`, string(body))
		writeJSON(t, w, http.StatusOK, map[string]any{"permalink": "my-list"})
	})

	result, err := client.UpdateList(context.Background(), "my-list", []string{"baz"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "my-list", result.(map[string]any)["permalink"])
}

func TestClient_EmptyWordsSlice(t *testing.T) {
	client := authenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(body))
	})

	_, err := client.UpdateList(context.Background(), "my-list", []string{}, nil)
	require.NoError(t, err)
}

func TestClient_DeleteList(t *testing.T) {
	client := authenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/wordList.json/my-list", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusOK)
	})

	result, err := client.DeleteList(context.Background(), "my-list", nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestClient_WordList(t *testing.T) {
	client := authenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wordList.json/my%20list", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":                7,
			"permalink":         "my list",
			"name":              "Mine",
			"numberWordsInList": 2,
		})
	})

	result, err := client.WordList(context.Background(), "my list", nil)
	require.NoError(t, err)

	var list WordList
	require.NoError(t, Decode(result, &list))
	assert.Equal(t, int64(7), list.ID)
	assert.Equal(t, "Mine", list.Name)
	assert.Equal(t, int64(2), list.NumberWordsInList)
}

func TestClient_WordListWordsDefaults(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantQuery string
	}{
		{"defaults", nil, "sortBy=createDate&sortOrder=desc"},
		{"blank values", Params{"sortBy": "", "sortOrder": " "}, "sortBy=createDate&sortOrder=desc"},
		{"caller values", Params{"sortBy": "alpha", "sortOrder": "asc", "limit": 5}, "limit=5&sortBy=alpha&sortOrder=asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := authenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/wordList.json/my-list/words", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				writeJSON(t, w, http.StatusOK, []any{})
			})

			_, err := client.WordListWords(context.Background(), "my-list", tt.params)
			require.NoError(t, err)
		})
	}
}

func TestClient_WordListValidation(t *testing.T) {
	var calls atomic.Int32
	client := authenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	ctx := context.Background()

	tests := []struct {
		name  string
		param string
		call  func() (JSON, error)
	}{
		{"WordList blank id", "wordListId", func() (JSON, error) { return client.WordList(ctx, " ", nil) }},
		{"WordListWords blank id", "wordListId", func() (JSON, error) { return client.WordListWords(ctx, "", nil) }},
		{"DeleteList blank id", "wordListId", func() (JSON, error) { return client.DeleteList(ctx, "", nil) }},
		{"AddWordsToList blank id", "wordListId", func() (JSON, error) { return client.AddWordsToList(ctx, "", []string{"a"}, nil) }},
		{"AddWordsToList nil words", "words", func() (JSON, error) { return client.AddWordsToList(ctx, "list", nil, nil) }},
		{"UpdateList nil words", "words", func() (JSON, error) { return client.UpdateList(ctx, "list", nil, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.param, vErr.Param)
		})
	}

	assert.Zero(t, calls.Load())
}

func TestClient_ValidationBeforeAuthentication(t *testing.T) {
	client, err := New("test-key", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.AddWordsToList(context.Background(), "list", nil, nil)
	assert.ErrorIs(t, err, ErrValidation)
}
