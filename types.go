package telegraph

import (
	"fmt"
	"unicode/utf8"
)

// Field length limits enforced by the Telegraph API, in characters.
const (
	MaxShortNameLen  = 32
	MaxAuthorNameLen = 128
	MaxAuthorURLLen  = 512
	MaxTitleLen      = 256
)

// Page list bounds. A limit of 0 keeps the server default.
const (
	MaxPageListLimit     = 200
	DefaultPageListLimit = 50
)

// Account is a Telegraph account. AccessToken and AuthURL are only
// populated by calls that return credentials: CreateAccount,
// RevokeAccessToken, and GetAccountInfo with the matching fields.
type Account struct {
	ShortName   string `json:"short_name"`
	AuthorName  string `json:"author_name,omitempty"`
	AuthorURL   string `json:"author_url,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	AuthURL     string `json:"auth_url,omitempty"`
	PageCount   int    `json:"page_count,omitempty"`
}

// Page is a published Telegraph page. Content is only populated when
// the call asked for it (withContent / PageParams.ReturnContent).
type Page struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorName  string `json:"author_name,omitempty"`
	AuthorURL   string `json:"author_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Content     []Node `json:"content,omitempty"`
	Views       int    `json:"views"`
	CanEdit     bool   `json:"can_edit,omitempty"`
}

// PageList is one slice of an account's pages, sorted by most
// recently created first.
type PageList struct {
	TotalCount int    `json:"total_count"`
	Pages      []Page `json:"pages"`
}

// PageViews holds the view counter returned by GetViews.
type PageViews struct {
	Views int `json:"views"`
}

// UploadResult is the server-relative location of one uploaded file,
// e.g. "/file/6a5b15e7eb4d7329ca7af.jpg".
type UploadResult struct {
	Src string `json:"src"`
}

// CreateAccountInput holds parameters for Client.CreateAccount.
// ShortName is required and shown in the account's "Edit" interface;
// AuthorName defaults to ShortName when empty.
type CreateAccountInput struct {
	ShortName  string
	AuthorName string
	AuthorURL  string
}

// Validate checks field presence and length limits.
func (in CreateAccountInput) Validate() error {
	if in.ShortName == "" {
		return ErrEmptyShortName
	}
	if err := validateShortName(in.ShortName); err != nil {
		return err
	}
	return validateAuthor(in.AuthorName, in.AuthorURL)
}

// EditAccountInfoInput holds parameters for Client.EditAccountInfo.
// Empty fields are left unchanged on the server.
type EditAccountInfoInput struct {
	ShortName  string
	AuthorName string
	AuthorURL  string
}

// Validate checks length limits on the fields that are set.
func (in EditAccountInfoInput) Validate() error {
	if in.ShortName != "" {
		if err := validateShortName(in.ShortName); err != nil {
			return err
		}
	}
	return validateAuthor(in.AuthorName, in.AuthorURL)
}

// PageParams holds parameters for CreatePage and EditPage. Title and
// Content are required; author fields fall back to the client-level
// defaults set with WithAuthor.
type PageParams struct {
	Title         string
	Content       []Node
	AuthorName    string
	AuthorURL     string
	ReturnContent bool
}

// Validate checks field presence and length limits.
func (p PageParams) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if n := utf8.RuneCountInString(p.Title); n > MaxTitleLen {
		return fmt.Errorf("%w: %d characters (maximum is %d)", ErrTitleTooLong, n, MaxTitleLen)
	}
	if len(p.Content) == 0 {
		return ErrEmptyContent
	}
	return validateAuthor(p.AuthorName, p.AuthorURL)
}

// validateShortName checks the 1-32 character limit.
func validateShortName(name string) error {
	if n := utf8.RuneCountInString(name); n > MaxShortNameLen {
		return fmt.Errorf("%w: %d characters (maximum is %d)", ErrShortNameTooLong, n, MaxShortNameLen)
	}
	return nil
}

// validateAuthor checks author name and URL length limits. Empty
// values are fine everywhere authors appear.
func validateAuthor(name, url string) error {
	if n := utf8.RuneCountInString(name); n > MaxAuthorNameLen {
		return fmt.Errorf("%w: %d characters (maximum is %d)", ErrAuthorNameTooLong, n, MaxAuthorNameLen)
	}
	if n := utf8.RuneCountInString(url); n > MaxAuthorURLLen {
		return fmt.Errorf("%w: %d characters (maximum is %d)", ErrAuthorURLTooLong, n, MaxAuthorURLLen)
	}
	return nil
}
