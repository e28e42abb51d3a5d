// Package preview renders Markdown drafts to standalone styled HTML documents
// so pages can be checked locally before publishing.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-telegraph/internal/assets"
)

// Sentinel errors for preview rendering.
var (
	ErrRenderFailed   = errors.New("markdown rendering failed")
	ErrTemplateParse  = errors.New("preview template invalid")
	ErrTemplateRender = errors.New("preview template rendering failed")
)

// Renderer converts Markdown drafts into complete HTML documents.
// It carries more markdown features than the publish path (footnotes,
// heading anchors, syntax highlighting) since a local preview has no
// schema to respect.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
	css  string
}

// New creates a Renderer using the named style. An empty styleName selects
// the built-in default. assetsDir optionally points at a directory of custom
// styles and templates which override the embedded ones.
func New(styleName, assetsDir string) (*Renderer, error) {
	if styleName == "" {
		styleName = assets.DefaultStyleName
	}

	resolver, err := assets.NewAssetResolver(assetsDir)
	if err != nil {
		return nil, err
	}

	css, err := resolver.LoadStyle(styleName)
	if err != nil {
		return nil, err
	}

	tmplContent, err := resolver.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("preview").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the stylesheet controls colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Anchors for footnote backlinks and fragment links
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Note: WithUnsafe() intentionally NOT used; raw HTML in drafts is omitted.
		),
	)

	return &Renderer{md: md, tmpl: tmpl, css: css}, nil
}

// documentData feeds the preview document template.
type documentData struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// Render converts Markdown content to a standalone HTML document.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *Renderer) Render(ctx context.Context, title, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var body bytes.Buffer
		if err := r.md.Convert([]byte(content), &body); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRenderFailed, err)}
			return
		}

		var doc bytes.Buffer
		data := documentData{
			Title: title,
			CSS:   template.CSS(r.css),
			Body:  template.HTML(body.String()), // #nosec G203 -- goldmark output, raw HTML omitted
		}
		if err := r.tmpl.Execute(&doc, data); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrTemplateRender, err)}
			return
		}
		done <- result{html: doc.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
