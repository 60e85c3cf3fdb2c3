package console_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/library/internal/catalog"
	"github.com/idilsaglam/library/internal/console"
	"github.com/idilsaglam/library/internal/ui"
)

func run(t *testing.T, cat *catalog.Catalog, input ...string) string {
	t.Helper()
	return runWith(t, cat, console.Options{}, input...)
}

func runWith(t *testing.T, cat *catalog.Catalog, opt console.Options, input ...string) string {
	t.Helper()
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	var out bytes.Buffer
	c := console.New(cat, strings.NewReader(strings.Join(input, "\n")+"\n"), &out, nil, opt)
	require.NoError(t, c.Run())
	return out.String()
}

func Test_Run_AddThenList(t *testing.T) {
	// arrange
	cat := catalog.New()

	// act
	out := run(t, cat,
		"1", "Dune", "Frank Herbert", "978-0",
		"1", "Foundation", "Isaac Asimov", "978-1",
		"5",
		"6",
	)

	// assert
	assert.Equal(t, 2, strings.Count(out, "Book added successfully!"))
	assert.Contains(t, out, "Author:   Frank Herbert")
	assert.Contains(t, out, "ISBN:     978-1")
	assert.Contains(t, out, "Borrowed: No")
	assert.Less(t, strings.Index(out, "Dune"), strings.Index(out, "Foundation"))
	assert.Equal(t, 2, cat.Len())
}

func Test_Run_ListEmpty(t *testing.T) {
	out := run(t, catalog.New(), "5", "6")

	assert.Contains(t, out, "No books available in the library.")
}

func Test_Run_BorrowAndReturnOutcomes(t *testing.T) {
	cat := catalog.New()
	cat.Add("Dune", "Herbert", "978-0")

	out := run(t, cat,
		"4", "978-0",
		"3", "978-0",
		"3", "978-0",
		"4", "978-0",
		"3", "missing",
		"6",
	)

	assert.Contains(t, out, "Book was not borrowed!")
	assert.Contains(t, out, "Book borrowed successfully!")
	assert.Contains(t, out, "Book is already borrowed!")
	assert.Contains(t, out, "Book returned successfully!")
	assert.Contains(t, out, "Book not found!")
	it, _ := cat.Get("978-0")
	assert.False(t, it.Borrowed)
}

func Test_Run_Scenario(t *testing.T) {
	cat := catalog.New()

	out := run(t, cat,
		"1", "Dune", "Herbert", "978-0",
		"1", "Foundation", "Asimov", "978-1",
		"3", "978-1",
		"2", "978-0",
		"5",
		"6",
	)

	assert.Contains(t, out, "Book removed successfully!")
	assert.Contains(t, out, "Borrowed: Yes")
	assert.Equal(t,
		[]catalog.Item{{Title: "Foundation", Author: "Asimov", ID: "978-1", Borrowed: true}},
		slices.Collect(cat.List()),
	)
}

func Test_Run_RemoveMissing(t *testing.T) {
	out := run(t, catalog.New(), "2", "978-0", "6")

	assert.Contains(t, out, "Book not found!")
}

func Test_Run_InvalidChoice(t *testing.T) {
	out := run(t, catalog.New(), "9", "abc", "6")

	assert.Equal(t, 2, strings.Count(out, "Invalid choice, please try again."))
}

func Test_Run_RejectsEmptyISBN(t *testing.T) {
	cat := catalog.New()

	out := run(t, cat, "1", "Untitled", "Nobody", "  ", "6")

	assert.Contains(t, out, "ISBN cannot be empty")
	assert.True(t, cat.IsEmpty())
}

func Test_Run_TitleKeepsSpaces(t *testing.T) {
	cat := catalog.New()

	run(t, cat, "1", "The Left Hand of Darkness", "Ursula K. Le Guin", "978-9", "6")

	it, ok := cat.Get("978-9")
	require.True(t, ok)
	assert.Equal(t, "The Left Hand of Darkness", it.Title)
	assert.Equal(t, "Ursula K. Le Guin", it.Author)
}

func Test_Run_EndOfInputStops(t *testing.T) {
	cat := catalog.New()
	var out bytes.Buffer

	// input ends in the middle of an add prompt
	c := console.New(cat, strings.NewReader("1\nDune\n"), &out, nil, console.Options{})

	require.NoError(t, c.Run())
	assert.True(t, cat.IsEmpty())
}

func Test_Run_LogsOutcomes(t *testing.T) {
	cat := catalog.New()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := console.New(cat, strings.NewReader("3\n978-0\n6\n"), io.Discard, logger, console.Options{})
	require.NoError(t, c.Run())

	assert.Contains(t, logs.String(), "action=borrow")
	assert.Contains(t, logs.String(), "ok=false")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func Test_Run_ReadError(t *testing.T) {
	c := console.New(catalog.New(), failingReader{}, io.Discard, nil, console.Options{})

	err := c.Run()

	assert.ErrorContains(t, err, "read input: boom")
}

func Test_Run_ListGrouped(t *testing.T) {
	// arrange
	cat := catalog.New()
	cat.Add("Dune", "Herbert", "978-0")
	cat.Add("Foundation", "Asimov", "978-1")
	cat.Add("Hyperion", "Simmons", "978-2")
	cat.Add("Solaris", "Lem", "978-3")
	cat.Borrow("978-2")
	cat.Borrow("978-0")

	// act
	out := runWith(t, cat, console.Options{Group: true}, "5", "6")

	// assert
	avail := strings.Index(out, "Available")
	onLoan := strings.Index(out, "On loan")
	require.True(t, avail >= 0 && onLoan > avail)

	pos := func(s string) int { return strings.Index(out, s) }
	assert.True(t, avail < pos("Foundation") && pos("Foundation") < pos("Solaris") && pos("Solaris") < onLoan)
	assert.True(t, onLoan < pos("Dune") && pos("Dune") < pos("Hyperion"))
}

func Test_Run_ListGrouped_EmptySection(t *testing.T) {
	cat := catalog.New()
	cat.Add("Dune", "Herbert", "978-0")

	out := runWith(t, cat, console.Options{Group: true}, "5", "6")

	assert.Less(t, strings.Index(out, "On loan"), strings.Index(out, "(none)"))
	assert.Equal(t, 1, strings.Count(out, "(none)"))
}
