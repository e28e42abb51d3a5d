package telegraph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// AccountField names an Account field for GetAccountInfo.
type AccountField string

// Account fields accepted by GetAccountInfo.
const (
	FieldShortName  AccountField = "short_name"
	FieldAuthorName AccountField = "author_name"
	FieldAuthorURL  AccountField = "author_url"
	FieldAuthURL    AccountField = "auth_url"
	FieldPageCount  AccountField = "page_count"
)

// defaultAccountFields mirrors the server-side default field set.
var defaultAccountFields = []AccountField{FieldShortName, FieldAuthorName, FieldAuthorURL}

// CreateAccount creates a new Telegraph account. AuthorName defaults
// to ShortName when empty. The returned Account carries the new
// access token, and the client adopts it for subsequent calls.
func (c *Client) CreateAccount(ctx context.Context, in CreateAccountInput) (*Account, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	authorName := in.AuthorName
	if authorName == "" {
		authorName = in.ShortName
	}

	params := url.Values{}
	params.Set("short_name", in.ShortName)
	params.Set("author_name", authorName)
	if in.AuthorURL != "" {
		params.Set("author_url", in.AuthorURL)
	}

	var acct Account
	if err := c.get(ctx, "createAccount", params, &acct); err != nil {
		return nil, err
	}
	c.setAccessToken(acct.AccessToken)
	return &acct, nil
}

// EditAccountInfo updates account fields. Empty input fields are left
// unchanged on the server.
func (c *Client) EditAccountInfo(ctx context.Context, in EditAccountInfoInput) (*Account, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	params, err := c.tokenValues()
	if err != nil {
		return nil, err
	}

	if in.ShortName != "" {
		params.Set("short_name", in.ShortName)
	}
	if in.AuthorName != "" {
		params.Set("author_name", in.AuthorName)
	}
	if in.AuthorURL != "" {
		params.Set("author_url", in.AuthorURL)
	}

	var acct Account
	if err := c.get(ctx, "editAccountInfo", params, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// GetAccountInfo fetches account fields. With no arguments it asks
// for short_name, author_name, and author_url.
func (c *Client) GetAccountInfo(ctx context.Context, fields ...AccountField) (*Account, error) {
	params, err := c.tokenValues()
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		fields = defaultAccountFields
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding fields: %w", err)
	}
	params.Set("fields", string(encoded))

	var acct Account
	if err := c.get(ctx, "getAccountInfo", params, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// RevokeAccessToken revokes the current access token and returns the
// account with its replacement and a fresh auth_url. The client
// adopts the new token, so pages stay editable through it.
func (c *Client) RevokeAccessToken(ctx context.Context) (*Account, error) {
	params, err := c.tokenValues()
	if err != nil {
		return nil, err
	}

	var acct Account
	if err := c.get(ctx, "revokeAccessToken", params, &acct); err != nil {
		return nil, err
	}
	c.setAccessToken(acct.AccessToken)
	return &acct, nil
}
