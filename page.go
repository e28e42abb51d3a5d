package telegraph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// viewsParams are the getViews parameter names, coarsest first. The
// variadic GetViews values are zipped onto them in order.
var viewsParams = [...]string{"year", "month", "day", "hour"}

// viewsBounds are the valid ranges for each getViews parameter.
var viewsBounds = [...][2]int{{2000, 2100}, {1, 12}, {1, 31}, {0, 24}}

// CreatePage publishes a new page and returns it.
func (c *Client) CreatePage(ctx context.Context, params PageParams) (*Page, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	form, err := c.pageForm(params)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := c.postForm(ctx, "createPage", form, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// EditPage updates an existing page identified by its path.
func (c *Client) EditPage(ctx context.Context, path string, params PageParams) (*Page, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	form, err := c.pageForm(params)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := c.postForm(ctx, "editPage/"+url.PathEscape(path), form, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// pageForm builds the form body shared by CreatePage and EditPage.
// Client-level author defaults fill in whatever the params leave
// empty.
func (c *Client) pageForm(params PageParams) (url.Values, error) {
	form, err := c.tokenValues()
	if err != nil {
		return nil, err
	}

	content, err := json.Marshal(params.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding content: %v", ErrParse, err)
	}
	form.Set("title", params.Title)
	form.Set("content", string(content))

	authorName := params.AuthorName
	if authorName == "" {
		authorName = c.authorName
	}
	authorURL := params.AuthorURL
	if authorURL == "" {
		authorURL = c.authorURL
	}
	if authorName != "" {
		form.Set("author_name", authorName)
	}
	if authorURL != "" {
		form.Set("author_url", authorURL)
	}
	if params.ReturnContent {
		form.Set("return_content", "true")
	}
	return form, nil
}

// GetPage fetches a page by its path, e.g. "Sample-Page-12-15". No
// access token is required. withContent controls whether the node
// tree is included in the result.
func (c *Client) GetPage(ctx context.Context, path string, withContent bool) (*Page, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	params := url.Values{}
	if withContent {
		params.Set("return_content", "true")
	}

	var page Page
	if err := c.get(ctx, "getPage/"+url.PathEscape(path), params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPageList lists the account's pages, most recently created first.
// offset must be >= 0. limit 0 keeps the server default of 50,
// otherwise 1-200.
func (c *Client) GetPageList(ctx context.Context, offset, limit int) (*PageList, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidOffset, offset)
	}
	if limit < 0 || limit > MaxPageListLimit {
		return nil, fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidLimit, limit, MaxPageListLimit)
	}
	params, err := c.tokenValues()
	if err != nil {
		return nil, err
	}

	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var list PageList
	if err := c.get(ctx, "getPageList", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetViews returns the view counter of a page. No access token is
// required. The optional time filter is given coarsest first: year
// (2000-2100), month (1-12), day (1-31), hour (0-24); each finer
// unit requires the coarser ones, so GetViews(ctx, path, 2023, 12)
// counts views during December 2023.
func (c *Client) GetViews(ctx context.Context, path string, at ...int) (*PageViews, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := validateViewsTime(at); err != nil {
		return nil, err
	}

	params := url.Values{}
	for i, v := range at {
		params.Set(viewsParams[i], strconv.Itoa(v))
	}

	var views PageViews
	if err := c.get(ctx, "getViews/"+url.PathEscape(path), params, &views); err != nil {
		return nil, err
	}
	return &views, nil
}

// validateViewsTime range-checks the zipped year/month/day/hour
// values.
func validateViewsTime(at []int) error {
	if len(at) > len(viewsParams) {
		return fmt.Errorf("%w: %d values (maximum is 4: year, month, day, hour)", ErrInvalidViewsTime, len(at))
	}
	for i, v := range at {
		if v < viewsBounds[i][0] || v > viewsBounds[i][1] {
			return fmt.Errorf("%w: %s %d (must be %d-%d)",
				ErrInvalidViewsTime, viewsParams[i], v, viewsBounds[i][0], viewsBounds[i][1])
		}
	}
	return nil
}
