package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/library/internal/ui"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldID
	fieldCount
)

// form is the inline add-book editor: title, author and ISBN inputs.
type form struct {
	active bool
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newForm() form {
	var f form
	for i, ph := range [fieldCount]string{"Title", "Author", "ISBN"} {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = ph
		ti.CharLimit = 200
		f.inputs[i] = ti
	}
	return f
}

func (f *form) open() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.active, f.focus, f.err = true, fieldTitle, ""
	return f.inputs[fieldTitle].Focus()
}

func (f *form) close() {
	f.active = false
	f.inputs[f.focus].Blur()
}

func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// update feeds msg to the form. done is true once a book was submitted.
func (f *form) update(msg tea.Msg) (title, author, id string, done bool, cmd tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			f.close()
			return "", "", "", false, nil
		case "tab", "down":
			return "", "", "", false, f.move(1)
		case "shift+tab", "up":
			return "", "", "", false, f.move(-1)
		case "enter":
			if f.focus < fieldID {
				return "", "", "", false, f.move(1)
			}
			id = strings.TrimSpace(f.inputs[fieldID].Value())
			if id == "" {
				f.err = "ISBN cannot be empty"
				return "", "", "", false, nil
			}
			f.close()
			return f.inputs[fieldTitle].Value(), f.inputs[fieldAuthor].Value(), id, true, nil
		}
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return "", "", "", false, cmd
}

func (f form) view() string {
	t := ui.Current()
	title := "Add book"
	if f.err != "" {
		title += "  " + t.Error.Render(f.err)
	}
	lines := []string{title}
	for i := range f.inputs {
		lines = append(lines, f.inputs[i].View())
	}
	lines = append(lines, t.Help.Render("tab next • enter save • esc cancel"))
	return strings.Join(lines, "\n")
}
