package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mderrors "github.com/andresfelipemendez/mdgen/internal/errors"
	"github.com/andresfelipemendez/mdgen/internal/logging"
)

const markdownExt = ".md"

// ProcessPage regenerates dst from the page folder src. dst is deleted and
// recreated, src/<name>.md is converted to dst/<name>.html and every entry
// not ending in .md is copied as is.
func (g *Generator) ProcessPage(src, dst string) error {
	name := filepath.Base(src)
	if err := g.processPage(name, src, dst); err != nil {
		return fmt.Errorf("page %s: %w", name, err)
	}
	return nil
}

func (g *Generator) processPage(name, src, dst string) error {
	if _, err := os.ReadDir(dst); err == nil {
		g.logger.Debug("removing previous output", logging.Path(dst))
		if err := os.RemoveAll(dst); err != nil {
			return mderrors.IO("remove", dst, err)
		}
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return mderrors.IO("create", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return mderrors.IO("read dir", src, err)
	}

	content := name + markdownExt
	found := false
	for _, entry := range entries {
		if entry.Name() != content {
			continue
		}
		found = true
		if err := g.convertPage(filepath.Join(src, entry.Name()), dst); err != nil {
			return err
		}
	}
	if !found {
		g.logger.Debug("no content file", logging.Page(name), logging.Path(filepath.Join(src, content)))
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return mderrors.IO("stat", src, err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), markdownExt) {
			continue
		}
		from := filepath.Join(src, entry.Name())
		g.logger.Debug("copying resource", logging.Page(name), logging.Path(from))
		if err := g.copyPath(from, filepath.Join(dst, entry.Name()), []os.FileInfo{srcInfo}); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) convertPage(path, dst string) error {
	out, err := g.conv.ConvertFile(path)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(path), markdownExt)
	outPath := filepath.Join(dst, stem+".html")
	if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
		return mderrors.IO("write", outPath, err)
	}
	g.logger.Debug("converted page", logging.Path(outPath))
	return nil
}

// copyPath follows symlinks. A directory that is one of its own ancestors
// is skipped.
func (g *Generator) copyPath(src, dst string, ancestors []os.FileInfo) error {
	info, err := os.Stat(src)
	if err != nil {
		return mderrors.IO("stat", src, err)
	}
	if !info.IsDir() {
		return copyFile(src, dst, info.Mode().Perm())
	}
	for _, a := range ancestors {
		if os.SameFile(a, info) {
			g.logger.Debug("skipping directory cycle", logging.Path(src))
			return nil
		}
	}

	if err := os.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return mderrors.IO("create", dst, err)
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return mderrors.IO("read dir", src, err)
	}
	ancestors = append(ancestors, info)
	for _, entry := range entries {
		if err := g.copyPath(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), ancestors); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return mderrors.IO("open", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return mderrors.IO("create", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return mderrors.IO("copy", dst, err)
	}
	if err := out.Close(); err != nil {
		return mderrors.IO("close", dst, err)
	}
	if err := os.Chmod(dst, perm); err != nil {
		return mderrors.IO("chmod", dst, err)
	}
	return nil
}
