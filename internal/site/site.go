// Package site generates the html tree and root index page from a root
// directory's md page folders.
package site

import (
	"log/slog"
	"os"
	"path/filepath"

	mderrors "github.com/andresfelipemendez/mdgen/internal/errors"
	"github.com/andresfelipemendez/mdgen/internal/logging"
	"github.com/andresfelipemendez/mdgen/internal/markdown"
)

const (
	sourceDir = "md"
	outputDir = "html"
	indexFile = "index.html"
)

type Generator struct {
	Root   string
	conv   *markdown.Converter
	logger *slog.Logger
}

type Report struct {
	Pages  []string
	Failed map[string]error
}

func New(root string, conv *markdown.Converter, logger *slog.Logger) *Generator {
	if conv == nil {
		conv = markdown.New()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Generator{
		Root:   root,
		conv:   conv,
		logger: logger,
	}
}

// Generate writes root/index.html and regenerates root/html/<page> for
// every entry of root/md. A root missing md or html is logged and treated
// as nothing to do. Page failures are logged and collected in the report;
// only failing to list md or to write the index is returned as an error.
func (g *Generator) Generate() (*Report, error) {
	report := &Report{Failed: make(map[string]error)}

	mdDir := filepath.Join(g.Root, sourceDir)
	htmlDir := filepath.Join(g.Root, outputDir)
	if !isDir(mdDir) || !isDir(htmlDir) {
		g.logger.Warn("md not found", logging.Root(g.Root))
		return report, nil
	}

	entries, err := os.ReadDir(mdDir)
	if err != nil {
		return nil, mderrors.IO("read dir", mdDir, err)
	}

	for _, entry := range entries {
		report.Pages = append(report.Pages, entry.Name())
	}

	if err := BuildIndex(report.Pages, filepath.Join(g.Root, indexFile)); err != nil {
		return nil, err
	}

	for _, name := range report.Pages {
		src := filepath.Join(mdDir, name)
		dst := filepath.Join(htmlDir, name)
		if err := g.ProcessPage(src, dst); err != nil {
			g.logger.Error("convert page failed", logging.Page(name), logging.Error(err))
			report.Failed[name] = err
		}
	}

	g.logger.Debug("generate finished",
		logging.Root(g.Root),
		logging.Count(len(report.Pages)),
		slog.Int("failed", len(report.Failed)))

	return report, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
