package wordnik

import "context"

// Authenticate logs a user in and stores the returned session token, which is
// then sent with every later request of this client. The decoded response is
// returned.
func (c *Client) Authenticate(ctx context.Context, username, password string) (JSON, error) {
	const op = "Authenticate"
	if err := requireString(op, "username", username); err != nil {
		return nil, err
	}
	if err := requireString(op, "password", password); err != nil {
		return nil, err
	}

	path := "/account.json/authenticate/" + segment(username)
	result, err := c.get(ctx, op, path, Params{"password": password})
	if err != nil {
		return nil, err
	}

	var auth AuthToken
	if result != nil {
		if err := Decode(result, &auth); err != nil {
			return nil, err
		}
	}
	if auth.Token == "" {
		return nil, &AuthenticationError{
			URL:     c.baseURL + path,
			Message: "authenticate response carried no session token",
		}
	}

	c.setToken(auth.Token)
	c.logger.Info().Str("username", username).Int64("user_id", auth.UserID).Msg("Authenticated with Wordnik")

	return result, nil
}

// APITokenStatus reports quota and validity of the API key.
func (c *Client) APITokenStatus(ctx context.Context, params Params) (JSON, error) {
	return c.get(ctx, "APITokenStatus", "/account.json/apiTokenStatus", params)
}

// User returns the authenticated user.
func (c *Client) User(ctx context.Context, params Params) (JSON, error) {
	if err := c.ensureAuthenticated("User"); err != nil {
		return nil, err
	}
	return c.get(ctx, "User", "/account.json/user", params)
}

// WordLists returns the authenticated user's word lists.
// Params: skip, limit.
func (c *Client) WordLists(ctx context.Context, params Params) (JSON, error) {
	if err := c.ensureAuthenticated("WordLists"); err != nil {
		return nil, err
	}
	return c.get(ctx, "WordLists", "/account.json/wordLists", params)
}
