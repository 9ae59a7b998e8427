// Package markdown converts markdown page files into complete HTML pages.
package markdown

import (
	"bytes"
	"os"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/wikilink"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	mderrors "github.com/andresfelipemendez/mdgen/internal/errors"
	"github.com/andresfelipemendez/mdgen/internal/templates"
)

// Converter renders markdown with goldmark. The zero-option converter is
// plain CommonMark with no extensions; raw HTML passes through.
type Converter struct {
	md goldmark.Markdown
}

type config struct {
	extensions []goldmark.Extender
}

type Option func(*config)

// WithWikiLinks resolves [[target]] links to target.html.
func WithWikiLinks() Option {
	return func(c *config) {
		c.extensions = append(c.extensions, &wikilink.Extender{})
	}
}

// WithHighlighting colors fenced code blocks using the named chroma style.
// Unknown names use chroma's fallback style.
func WithHighlighting(style string) Option {
	return func(c *config) {
		c.extensions = append(c.extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(styles.Get(style).Name),
			highlighting.WithFormatOptions(
				chromahtml.WithLineNumbers(false),
			),
		))
	}
}

func New(opts ...Option) *Converter {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(cfg.extensions...),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (c *Converter) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return nil, mderrors.Render("render markdown", err)
	}
	return buf.Bytes(), nil
}

// ConvertFile reads the markdown file at path and returns it rendered and
// wrapped in the page template. The file must be valid UTF-8.
func (c *Converter) ConvertFile(path string) (string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return "", mderrors.IO("read", path, err)
	}
	if _, _, err := transform.Bytes(encoding.UTF8Validator, body); err != nil {
		return "", mderrors.IO("decode", path, err)
	}

	fragment, err := c.Render(body)
	if err != nil {
		return "", err
	}

	return templates.Render(templates.Page, map[string]string{
		templates.ContentKey: string(fragment),
	})
}
