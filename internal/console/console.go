// Package console drives a catalog from a numbered text menu.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/idilsaglam/library/internal/catalog"
	"github.com/idilsaglam/library/internal/ui"
)

const (
	choiceAdd = iota + 1
	choiceRemove
	choiceBorrow
	choiceReturn
	choiceList
	choiceExit
)

// errEOF marks the end of input in the middle of a prompt.
var errEOF = errors.New("end of input")

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by available/on loan
}

// Console reads menu choices and prompts line by line.
type Console struct {
	cat *catalog.Catalog
	in  *bufio.Scanner
	out io.Writer
	log *slog.Logger
	opt Options
}

func New(cat *catalog.Catalog, in io.Reader, out io.Writer, log *slog.Logger, opt Options) *Console {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Console{cat: cat, in: bufio.NewScanner(in), out: out, log: log, opt: opt}
}

// Run loops until the exit choice or end of input. Only read errors are
// returned; catalog outcomes are printed.
func (c *Console) Run() error {
	for {
		c.menu()
		line, err := c.readLine()
		if err != nil {
			return c.finish(err)
		}
		// anything that is not a number falls through to the invalid branch
		choice, _ := strconv.Atoi(strings.TrimSpace(line))

		switch choice {
		case choiceExit:
			c.log.Debug("exit selected")
			return nil
		case choiceAdd:
			err = c.doAdd()
		case choiceRemove:
			err = c.doByID("remove", c.cat.Remove)
		case choiceBorrow:
			err = c.doByID("borrow", c.cat.Borrow)
		case choiceReturn:
			err = c.doByID("return", c.cat.Return)
		case choiceList:
			c.doList()
		default:
			ui.Fail(c.out, "Invalid choice, please try again.")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *Console) menu() {
	fmt.Fprint(c.out, ui.Current().Title.Render("Library Management System")+`
1. Add Book
2. Remove Book
3. Borrow Book
4. Return Book
5. List All Books
6. Exit
Enter your choice: `)
}

// -------------- menu actions ----------------

func (c *Console) doAdd() error {
	title, err := c.prompt("Enter title: ")
	if err != nil {
		return err
	}
	author, err := c.prompt("Enter author: ")
	if err != nil {
		return err
	}
	id, err := c.prompt("Enter ISBN: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		ui.Fail(c.out, "ISBN cannot be empty")
		return nil
	}
	c.report("add", id, c.cat.Add(title, author, id))
	return nil
}

func (c *Console) doByID(action string, op func(string) catalog.Outcome) error {
	id, err := c.prompt(fmt.Sprintf("Enter ISBN of the book to %s: ", action))
	if err != nil {
		return err
	}
	c.report(action, id, op(id))
	return nil
}

func (c *Console) doList() {
	if c.cat.IsEmpty() {
		fmt.Fprintln(c.out, ui.Current().Muted.Render("No books available in the library."))
		return
	}
	t := ui.Current()
	borrowed, available := c.cat.Stats()
	total := borrowed + available

	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d",
			t.Title.Render("Books"),
			t.Success.Render("available"), available,
			t.Pending.Render("borrowed"), borrowed),
		t.Muted.Render(ui.AvailabilityBar(borrowed, total, 28)),
		"",
	}
	books := slices.Collect(c.cat.List())
	if c.opt.Group {
		lines = append(lines, groupLines(books)...)
	} else {
		lines = append(lines, flatLines(books)...)
	}
	fmt.Fprintln(c.out, ui.Panel(lines))
}

// -------------- rendering helpers --------------

func flatLines(books []catalog.Item) []string {
	t := ui.Current()
	out := make([]string, 0, 4*len(books))
	for _, it := range books {
		yes := "No"
		if it.Borrowed {
			yes = "Yes"
		}
		out = append(out,
			ui.Checkbox(it.Borrowed)+" "+t.Title.Render(it.Title),
			"  Author:   "+it.Author,
			"  ISBN:     "+it.ID,
			"  Borrowed: "+yes,
		)
	}
	return out
}

// groupLines splits books into available and on-loan sections, each in
// catalog order.
func groupLines(books []catalog.Item) []string {
	var avail, onLoan []catalog.Item
	for _, it := range books {
		if it.Borrowed {
			onLoan = append(onLoan, it)
		} else {
			avail = append(avail, it)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Available"))
	if len(avail) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(avail)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("On loan"))
	if len(onLoan) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(onLoan)...)
	}
	return lines
}

// -------------- helpers --------------

func (c *Console) report(action, id string, o catalog.Outcome) {
	c.log.Debug("catalog operation", "action", action, "id", id, "outcome", o.String(), "ok", o.OK())
	if o.OK() {
		ui.OK(c.out, o.String())
		return
	}
	ui.Fail(c.out, o.String())
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errEOF
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errEOF) {
		fmt.Fprintln(c.out)
		c.log.Debug("input closed")
		return nil
	}
	c.log.Error("console stopped", "err", err)
	return err
}
