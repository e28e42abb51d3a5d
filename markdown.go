package telegraph

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownConverter renders GitHub-flavored Markdown to HTML, which
// HTMLToNodes then turns into the node tree. goldmark.Markdown is
// safe for concurrent use.
var markdownConverter = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, autolinks, task lists
	),
	goldmark.WithRendererOptions(
		html.WithXHTML(), // self-closing tags
	),
)

// tagRemap folds tags Markdown produces onto the Telegraph schema.
// Telegraph has exactly two heading levels, h3 and h4; the page
// title takes the place of h1.
var tagRemap = map[string]string{
	"h1":  "h3",
	"h2":  "h4",
	"h5":  "h4",
	"h6":  "h4",
	"del": "s",
}

// MarkdownToNodes converts GitHub-flavored Markdown into Telegraph's
// node tree. Headings fold onto the two levels Telegraph supports
// (h1 becomes h3, h2 becomes h4, h3 and h4 stay, deeper levels clamp
// to h4) and ~~strikethrough~~ becomes s. The newlines Markdown
// renderers place between blocks carry no meaning, so whitespace-only
// top-level nodes are dropped. Markdown tables have no place in the
// Telegraph schema; the API rejects pages containing them.
func MarkdownToNodes(markdown string) ([]Node, error) {
	if markdown == "" {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	converted, err := HTMLToNodes(buf.String())
	if err != nil {
		return nil, err
	}

	nodes := converted[:0]
	for _, n := range converted {
		if n.Element == nil && strings.TrimSpace(n.Text) == "" {
			continue
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	remapTags(nodes)
	return nodes, nil
}

// remapTags rewrites unsupported tags in place, recursively.
func remapTags(nodes []Node) {
	for i := range nodes {
		elem := nodes[i].Element
		if elem == nil {
			continue
		}
		if mapped, ok := tagRemap[elem.Tag]; ok {
			elem.Tag = mapped
		}
		remapTags(elem.Children)
	}
}
