package site

import (
	"fmt"
	"html"
	"os"
	"slices"
	"strings"

	mderrors "github.com/andresfelipemendez/mdgen/internal/errors"
	"github.com/andresfelipemendez/mdgen/internal/templates"
)

// BuildIndex writes the index page listing names, sorted, to dst.
func BuildIndex(names []string, dst string) error {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	var entries strings.Builder
	for _, name := range sorted {
		entries.WriteString(indexEntry(name))
	}

	out, err := templates.Render(templates.Index, map[string]string{
		templates.EntriesKey: entries.String(),
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
		return mderrors.IO("write index", dst, err)
	}
	return nil
}

func indexEntry(name string) string {
	n := html.EscapeString(name)
	return fmt.Sprintf(`<li><a href="./html/%s/%s.html">%s</a></li>`, n, n, n)
}
