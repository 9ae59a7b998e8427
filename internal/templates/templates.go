// Package templates renders the two fixed HTML wrappers mdgen writes: one
// around each converted page and one around the root index.
package templates

import (
	"bytes"
	"embed"
	"html/template"

	mderrors "github.com/andresfelipemendez/mdgen/internal/errors"
)

type Name string

const (
	Page  Name = "page.html"
	Index Name = "index.html"
)

const (
	ContentKey = "content"
	EntriesKey = "entries"
)

//go:embed files/*.html
var files embed.FS

// Render substitutes values into the named template. Values are trusted
// HTML fragments and are inserted unescaped. A placeholder the template
// references but values lacks is an error.
func Render(name Name, values map[string]string) (string, error) {
	tmpl, err := template.New(string(name)).
		Option("missingkey=error").
		ParseFS(files, "files/"+string(name))
	if err != nil {
		return "", mderrors.Render("parse template "+string(name), err)
	}

	data := make(map[string]template.HTML, len(values))
	for k, v := range values {
		data[k] = template.HTML(v)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", mderrors.Render("execute template "+string(name), err)
	}
	return buf.String(), nil
}
