// Package telegraph is a client for the Telegraph publishing API
// (https://telegra.ph). It covers account management, page creation
// and editing, view counters, and media upload, plus conversion
// between HTML or Markdown and Telegraph's node-based content format.
//
// # Quick Start
//
// Create an account once, keep the access token, and publish:
//
//	client := telegraph.NewClient("")
//	account, err := client.CreateAccount(ctx, telegraph.CreateAccountInput{
//	    ShortName: "sandbox",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Persist account.AccessToken; the client already uses it.
//
//	content, err := telegraph.HTMLToNodes("<p>Hello, <b>world</b>!</p>")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page, err := client.CreatePage(ctx, telegraph.PageParams{
//	    Title:   "Hello",
//	    Content: content,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(page.URL)
//
// # Content Format
//
// Telegraph pages are trees of Node values: a node is either a bare
// text leaf or an element with a tag, an optional href/src attribute
// map, and ordered children. HTMLToNodes and NodesToHTML convert
// between HTML fragments and that tree; MarkdownToNodes goes from
// GitHub-flavored Markdown. Trees can also be built by hand with the
// Text, Elem, Link, and Image constructors:
//
//	content := []telegraph.Node{
//	    telegraph.Elem("p",
//	        telegraph.Text("Written with "),
//	        telegraph.Link("https://github.com/alnah/go-telegraph", telegraph.Text("go-telegraph")),
//	    ),
//	}
//
// Attributes outside href and src are not part of the Telegraph
// schema and are dropped during conversion.
//
// # Errors
//
// Failures reported by the API surface as *APIError carrying the raw
// error code. Well-known codes have sentinels for errors.Is:
//
//	_, err := client.GetPageList(ctx, 0, 50)
//	if errors.Is(err, telegraph.ErrInvalidToken) {
//	    // re-authenticate
//	}
//	var apiErr *telegraph.APIError
//	if errors.As(err, &apiErr) {
//	    if wait, ok := apiErr.FloodWait(); ok {
//	        time.Sleep(wait) // rate limited
//	    }
//	}
//
// Transport failures are wrapped with %w, so context and net errors
// stay reachable. The library never retries; that is the caller's
// decision.
//
// # Configuration
//
// Functional options customize the client:
//
//	client := telegraph.NewClient(token,
//	    telegraph.WithAuthor("Jane", "https://example.com/jane"),
//	    telegraph.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
//	)
//
// A Client is safe for concurrent use. Its only mutable state is the
// access token, which CreateAccount and RevokeAccessToken replace.
package telegraph
