package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	mderrors "github.com/andresfelipemendez/mdgen/internal/errors"
	"github.com/andresfelipemendez/mdgen/internal/logging"
	"github.com/andresfelipemendez/mdgen/internal/markdown"
	"github.com/andresfelipemendez/mdgen/internal/site"
)

type CLI struct {
	Gen GenCmd `cmd:"" help:"Convert md/<page>/<page>.md into html/<page>/ and write index.html."`
}

type GenCmd struct {
	URL string `name:"url" short:"u" required:"" help:"Root directory containing md/ and html/."`
}

func (c *GenCmd) Run(logger *slog.Logger) error {
	if _, err := site.New(c.URL, markdown.New(), logger).Generate(); err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("mdgen"),
		kong.Description("Generate a static site from markdown page folders."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		argErr := mderrors.Argument(err)
		fmt.Fprintf(stderr, "error: %v\n", argErr)
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(false)
		}
		return mderrors.ExitCode(argErr)
	}

	logger := logging.New(stderr, slog.LevelInfo)
	if err := ctx.Run(logger); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return mderrors.ExitCode(err)
	}
	return 0
}
