package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nojima/apitester/input"
)

type column int

const (
	columnKey column = iota
	columnValue
)

// kvEditor edits an EntryList one cell at a time. The list is shared with
// the draft, so every keystroke lands in the draft immediately.
type kvEditor struct {
	list *input.EntryList
	row  int
	col  column
	cell textinput.Model
}

func newKVEditor(list *input.EntryList) kvEditor {
	cell := textinput.New()
	cell.Prompt = ""
	cell.CharLimit = 4096
	cell.Width = 30
	e := kvEditor{
		list: list,
		cell: cell,
	}
	e.load()
	return e
}

// load copies the selected cell into the text input.
func (e *kvEditor) load() {
	entry, ok := e.list.At(e.row)
	if !ok {
		e.cell.SetValue("")
		return
	}
	if e.col == columnKey {
		e.cell.SetValue(entry.Key)
	} else {
		e.cell.SetValue(entry.Value)
	}
	e.cell.CursorEnd()
}

// store writes the text input back into the selected cell.
func (e *kvEditor) store() {
	if e.col == columnKey {
		e.list.SetKey(e.row, e.cell.Value())
	} else {
		e.list.SetValue(e.row, e.cell.Value())
	}
}

func (e *kvEditor) focus() tea.Cmd {
	return e.cell.Focus()
}

func (e *kvEditor) blur() {
	e.cell.Blur()
}

func (e kvEditor) Update(msg tea.KeyMsg) (kvEditor, tea.Cmd) {
	switch msg.String() {
	case "up":
		if e.row > 0 {
			e.row--
			e.load()
		}
		return e, nil

	case "down":
		if e.row < e.list.Len()-1 {
			e.row++
			e.load()
		}
		return e, nil

	case "enter":
		if e.col == columnKey {
			e.col = columnValue
		} else {
			e.col = columnKey
			if e.row < e.list.Len()-1 {
				e.row++
			}
		}
		e.load()
		return e, nil

	case "ctrl+n":
		e.list.Add()
		e.row = e.list.Len() - 1
		e.col = columnKey
		e.load()
		return e, nil

	case "ctrl+x":
		e.list.Remove(e.row)
		if e.row >= e.list.Len() && e.row > 0 {
			e.row--
		}
		e.load()
		return e, nil

	case "ctrl+g":
		e.list.Toggle(e.row)
		return e, nil
	}

	if e.list.Len() == 0 {
		return e, nil
	}
	var cmd tea.Cmd
	e.cell, cmd = e.cell.Update(msg)
	e.store()
	return e, cmd
}

// View lists every entry, with the selected cell replaced by the input.
func (e kvEditor) View(emptyHint string) string {
	if e.list.Len() == 0 {
		return PlaceholderStyle.Render(emptyHint)
	}

	lines := make([]string, 0, e.list.Len())
	for i, entry := range e.list.Entries() {
		check := "[x]"
		if !entry.Enabled {
			check = "[ ]"
		}
		key, value := entry.Key, entry.Value
		if i == e.row && e.cell.Focused() {
			if e.col == columnKey {
				key = e.cell.View()
			} else {
				value = e.cell.View()
			}
		}
		if key == "" {
			key = PlaceholderStyle.Render("key")
		}

		line := check + " " + key + " = " + value
		switch {
		case i == e.row:
			line = SelectedRowStyle.Render("> ") + line
		case !entry.Enabled:
			line = "  " + DisabledRowStyle.Render(line)
		default:
			line = "  " + RowStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
