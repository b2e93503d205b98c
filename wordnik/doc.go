// Package wordnik provides a client for the Wordnik dictionary API (v4).
//
// Every method maps to one API endpoint and performs exactly one blocking
// HTTP round trip. Responses are passed through as decoded JSON values;
// Decode converts them into the typed records of this package when field
// access is needed.
//
// # Usage
//
//	client, err := wordnik.New("your-api-key", zerolog.New(os.Stderr))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	defs, err := client.Definitions(ctx, "donkey", wordnik.Params{"limit": 3})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if defs == nil {
//		// no such word
//	}
//
// Word list and account operations need a session first:
//
//	if _, err := client.Authenticate(ctx, "user", "secret"); err != nil {
//		log.Fatal(err)
//	}
//	_, err = client.AddWordsToList(ctx, "my-list", []string{"foo", "bar"}, nil)
//
// # Error Handling
//
// A 404 is not an error: the method returns a nil value and a nil error.
// Failures can be classified with errors.Is against ErrConfiguration,
// ErrValidation, ErrAuthenticationRequired, ErrAuthentication, ErrNetwork
// and ErrAPI, or inspected with errors.As for *ValidationError,
// *AuthenticationError, *NetworkError and *APIError.
//
// No call is ever retried.
package wordnik
