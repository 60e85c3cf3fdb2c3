// Package tui is the interactive Bubble Tea front end for a catalog.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/library/internal/catalog"
	"github.com/idilsaglam/library/internal/ui"
)

const emptyText = "No books available in the library."

// list floor so tiny terminals never hand negative sizes to the list
const (
	minWidth  = 20
	minHeight = 5
)

// listItem adapts a catalog item to bubbles/list.Item.
type listItem struct {
	book catalog.Item
}

func (i listItem) FilterValue() string {
	return i.book.Title + " " + i.book.Author + " " + i.book.ID
}

// itemDelegate renders one book per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	text := fmt.Sprintf("%s  %s  %s", it.book.Title, t.Muted.Render(it.book.Author), t.Accent.Render(it.book.ID))
	if it.book.Borrowed {
		text = fmt.Sprintf("%s  %s  %s", t.OnLoan.Render(it.book.Title), t.Muted.Render(it.book.Author), t.Muted.Render(it.book.ID))
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+ui.Checkbox(it.book.Borrowed)+" "+text)
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	borrowBind = key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "borrow"))
	returnBind = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "return"))
	removeBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
)

// Model is the Bubble Tea model. It owns no books itself: every action goes
// through the catalog and the list is rebuilt from Catalog.List afterwards.
type Model struct {
	cat  *catalog.Catalog
	list list.Model
	form form
	log  *slog.Logger

	status   string
	statusOK bool
}

func New(cat *catalog.Catalog, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("book", "books")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, borrowBind, returnBind, removeBind}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	m := Model{cat: cat, list: l, form: newForm(), log: log}
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(cat *catalog.Catalog, log *slog.Logger) error {
	p := tea.NewProgram(New(cat, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(max(ws.Width-4, minWidth), max(ws.Height-8, minHeight))
		return m, nil
	}

	if m.form.active {
		return m.updateForm(msg)
	}

	// let the list own keystrokes while the filter prompt is open
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() != list.FilterApplied {
				return m, tea.Quit
			}
		case "a":
			cmd := m.form.open()
			return m, cmd
		case "b":
			m.onSelected("borrow", m.cat.Borrow)
			return m, nil
		case "r":
			m.onSelected("return", m.cat.Return)
			return m, nil
		case "d":
			m.onSelected("remove", m.cat.Remove)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	title, author, id, done, cmd := m.form.update(msg)
	if !done {
		return m, cmd
	}
	m.apply("add", id, m.cat.Add(title, author, id))
	return m, cmd
}

// onSelected runs op on the highlighted row. Catalog operations act on the
// first book with an ID, so a row shadowed by an earlier duplicate is refused.
func (m *Model) onSelected(action string, op func(string) catalog.Outcome) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		m.status, m.statusOK = "no book selected", false
		return
	}
	first := slices.IndexFunc(m.list.Items(), func(li list.Item) bool {
		other, ok := li.(listItem)
		return ok && other.book.ID == it.book.ID
	})
	if first != m.list.GlobalIndex() {
		m.log.Debug("ambiguous selection", "action", action, "id", it.book.ID)
		m.status, m.statusOK = "ambiguous ISBN "+it.book.ID+": an earlier book shares it", false
		return
	}
	m.apply(action, it.book.ID, op(it.book.ID))
}

func (m *Model) apply(action, id string, o catalog.Outcome) {
	m.log.Debug("catalog operation", "action", action, "id", id, "outcome", o.String(), "ok", o.OK())
	m.status, m.statusOK = o.String(), o.OK()
	if o.OK() {
		m.refresh()
	}
}

// refresh rebuilds the list items and the header counts from the catalog.
func (m *Model) refresh() {
	items := make([]list.Item, 0, m.cat.Len())
	for it := range m.cat.List() {
		items = append(items, listItem{book: it})
	}
	if cmd := m.list.SetItems(items); cmd != nil {
		// an applied filter is recomputed by cmd; run it now so the visible
		// rows and the cursor clamp below see the new items
		m.list, _ = m.list.Update(cmd())
	}
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}

	t := ui.Current()
	borrowed, available := m.cat.Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Library"),
		t.Success.Render(t.BoxAvailable), available,
		t.Pending.Render(t.BoxBorrowed), borrowed,
		t.Accent.Render("Total"), m.cat.Len(),
	)
}

func (m Model) View() string {
	t := ui.Current()
	var content string
	if m.cat.IsEmpty() {
		content = t.Muted.Render(emptyText) + "\n\n" + t.Help.Render("a add • q quit")
	} else {
		content = m.list.View()
	}

	if m.status != "" {
		st := t.Error.Render(t.SymFail + " " + m.status)
		if m.statusOK {
			st = t.Success.Render(t.SymOK + " " + m.status)
		}
		content += "\n" + st
	}
	if m.form.active {
		content += "\n" + ui.PanelStyle().Render(m.form.view())
	}
	return ui.PanelStyle().Render(strings.TrimRight(content, "\n"))
}
