package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nojima/apitester/exchange"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/output"
	"github.com/pkg/errors"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+r":
		return m.handleSend()

	case "ctrl+o":
		return m.handleNextMethod()

	case "ctrl+t":
		return m.handleNextTab()

	case "ctrl+y":
		return m.handleCopyResponse()

	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)

	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case focusURL:
		if msg.String() == "enter" {
			return m.handleSend()
		}
	case focusEditor:
		if m.tab == tabAuth {
			switch msg.String() {
			case "up":
				return m.handleCycleAuth(-1)
			case "down":
				return m.handleCycleAuth(1)
			}
		}
	}
	return m.updateFocused(msg)
}

// handleSend starts a request from the current draft. Nothing happens while
// the URL is empty or a request is in flight.
func (m Model) handleSend() (Model, tea.Cmd) {
	req, err := m.executor.Start(m.draft)
	switch {
	case errors.Is(err, exchange.ErrEmptyURL):
		m.notice = "Enter a URL first"
		return m, nil
	case errors.Is(err, exchange.ErrBusy):
		return m, nil
	case err != nil:
		m.notice = err.Error()
		return m, nil
	}

	m.notice = ""
	m.updateViewportContent()
	return m, tea.Batch(
		m.spinner.Tick,
		sendRequest(m.ctx, m.executor, req),
	)
}

func (m Model) handleNextMethod() (Model, tea.Cmd) {
	m.draft.Method = m.draft.Method.Next()
	return m, nil
}

func (m Model) handleNextTab() (Model, tea.Cmd) {
	m.tab = (m.tab + 1) % tabCount
	if m.focus == focusEditor {
		return m.focusTab()
	}
	return m, nil
}

// handleCycleAuth steps through input.AuthTypes.
func (m Model) handleCycleAuth(step int) (Model, tea.Cmd) {
	n := len(input.AuthTypes)
	current := 0
	for i, t := range input.AuthTypes {
		if t == m.draft.AuthType {
			current = i
			break
		}
	}
	m.draft.AuthType = input.AuthTypes[(current+step+n)%n]
	m.authValue.Placeholder = authPlaceholder(m.draft.AuthType)
	return m.focusTab()
}

// handleCopyResponse copies the rendered response to the clipboard.
func (m Model) handleCopyResponse() (Model, tea.Cmd) {
	result := m.executor.Result()
	if result == nil {
		return m, nil
	}
	if err := writeClipboard(output.Render(result)); err != nil {
		m.logger.Warn("copying response failed", "error", err)
		m.notice = "Copy failed: " + err.Error()
		return m, nil
	}
	m.notice = "Response copied"
	return m, nil
}
