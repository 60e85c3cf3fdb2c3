package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/library/internal/catalog"
	"github.com/idilsaglam/library/internal/config"
	"github.com/idilsaglam/library/internal/console"
	"github.com/idilsaglam/library/internal/store/jsonstore"
	"github.com/idilsaglam/library/internal/tui"
	"github.com/idilsaglam/library/internal/ui"
)

func main() {
	interactive := flag.Bool("tui", false, "start the interactive list instead of the numbered menu")
	theme := flag.String("theme", "", "classic, neon or mono (overrides LIBRARY_THEME)")
	seed := flag.String("seed", "", "JSON file of books to start with (overrides LIBRARY_SEED)")
	group := flag.Bool("group", false, "list books grouped by available/on loan")
	flag.Parse()

	os.Exit(run(options{
		interactive: *interactive,
		group:       *group,
		theme:       *theme,
		seed:        *seed,
	}, os.Stdin, os.Stdout))
}

// options are the root flags.
type options struct {
	interactive, group bool
	theme, seed        string
}

// run wires config, logging and the catalog, then hands off to a front end.
// It returns the process exit code.
func run(opt options, in io.Reader, out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		return 1
	}
	if opt.theme != "" {
		cfg.Theme = opt.theme
	}
	if opt.seed != "" {
		cfg.SeedPath = opt.seed
	}
	ui.SetTheme(cfg.Theme)

	// The TUI owns the terminal, so logs only go somewhere when a file is set.
	var fallback io.Writer = os.Stderr
	if opt.interactive {
		fallback = io.Discard
	}
	log, closer, err := cfg.NewLogger(fallback)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	defer closer.Close()

	cat := catalog.New()
	if cfg.SeedPath != "" {
		n, err := jsonstore.LoadInto(cat, cfg.SeedPath)
		if err != nil {
			ui.Fail(os.Stderr, "seed: "+err.Error())
			return 1
		}
		log.Info("catalog seeded", "path", cfg.SeedPath, "books", n)
	}

	if opt.interactive {
		err = tui.Run(cat, log)
	} else {
		err = console.New(cat, in, out, log, console.Options{Group: opt.group}).Run()
	}
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr)
		return 1
	}
	return 0
}
