// Package markdown renders host-supplied description text to HTML fragments.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter turns Markdown source into HTML. Raw HTML embedded in the source is
// dropped unless the converter was built with AllowRawHTML.
type Converter struct {
	md goldmark.Markdown
}

// Option configures a Converter.
type Option func(*options)

type options struct {
	unsafe bool
}

// AllowRawHTML keeps raw HTML blocks and inline tags from the source.
func AllowRawHTML() Option {
	return func(o *options) { o.unsafe = true }
}

// NewConverter builds a GitHub-flavoured Markdown converter.
func NewConverter(opts ...Option) *Converter {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	rendererOpts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
	}
	if o.unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	return &Converter{md: goldmark.New(rendererOpts...)}
}

// ToHTML converts src. Blank input yields an empty string.
func (c *Converter) ToHTML(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
