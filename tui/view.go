package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nojima/apitester/exchange"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/output"
)

const placeholderText = "Enter URL and press enter to send"

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderURLBar())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Height(editorHeight).MaxHeight(editorHeight).Render(m.renderEditor()))
	b.WriteString("\n")
	b.WriteString(m.renderSeparator())
	b.WriteString("\n")
	b.WriteString(m.renderMeta())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderURLBar() string {
	badge := MethodStyle(m.draft.Method).Render(string(m.draft.Method))
	return badge + " " + m.url.View()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		name := t.String()
		switch t {
		case tabParams:
			name = fmt.Sprintf("%s (%d)", name, len(m.draft.Params.Active()))
		case tabHeaders:
			name = fmt.Sprintf("%s (%d)", name, len(m.draft.Headers.Active()))
		}
		if t == m.tab {
			parts = append(parts, ActiveTabStyle.Render(name))
		} else {
			parts = append(parts, TabStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderEditor() string {
	switch m.tab {
	case tabParams:
		return m.params.View("No query parameters. ctrl+n adds one.")
	case tabHeaders:
		return m.headers.View("No headers. ctrl+n adds one.")
	case tabBody:
		view := m.body.View()
		if !m.draft.Method.AllowsBody() {
			view = MetaStyle.Render(fmt.Sprintf("The body is not sent with %s.", m.draft.Method)) + "\n" + view
		}
		return view
	case tabAuth:
		return m.renderAuth()
	}
	return ""
}

func (m Model) renderAuth() string {
	var options []string
	for _, t := range input.AuthTypes {
		label := t.Label()
		if t == m.draft.AuthType {
			options = append(options, ActiveTabStyle.Render(label))
		} else {
			options = append(options, TabStyle.Render(label))
		}
	}
	lines := []string{strings.Join(options, " ")}
	if m.draft.AuthType == input.AuthNone {
		lines = append(lines, PlaceholderStyle.Render("No authentication. up/down selects a scheme."))
	} else {
		lines = append(lines, m.authValue.View())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSeparator() string {
	width := m.width
	if width < 1 {
		width = 1
	}
	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// renderMeta renders "STATUS TEXT · N ms · SIZE" for a success.
func (m Model) renderMeta() string {
	if m.executor.Loading() {
		return MetaStyle.Render(m.spinner.View() + " Sending...")
	}
	switch r := m.executor.Result().(type) {
	case *exchange.Success:
		status := StatusStyle(r.Status).Render(fmt.Sprintf("%d %s", r.Status, r.StatusText))
		return status + MetaStyle.Render(fmt.Sprintf(" · %d ms · %s", r.Time, output.FormatSize(r.Size)))
	case *exchange.Failure:
		return ErrorStyle.Render("Error")
	}
	return ""
}

// updateViewportContent puts the rendered response into the viewport.
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.responseContent())
}

func (m *Model) responseContent() string {
	if m.executor.Loading() {
		return ""
	}
	switch r := m.executor.Result().(type) {
	case *exchange.Success:
		return highlightJSON(m.renderer, r.Data)
	case *exchange.Failure:
		return ErrorStyle.Render(output.Render(r))
	}
	return PlaceholderStyle.Render(placeholderText)
}

func (m Model) renderFooter() string {
	sendStyle := ShortcutKeyStyle
	if m.draft.URL == "" || m.executor.Loading() {
		sendStyle = DisabledShortcutStyle
	}
	parts := []string{
		sendStyle.Render("ctrl+r") + ShortcutDescStyle.Render(" send"),
		ShortcutKeyStyle.Render("ctrl+o") + ShortcutDescStyle.Render(" method"),
		ShortcutKeyStyle.Render("ctrl+t") + ShortcutDescStyle.Render(" tab"),
		ShortcutKeyStyle.Render("tab") + ShortcutDescStyle.Render(" focus"),
		ShortcutKeyStyle.Render("ctrl+y") + ShortcutDescStyle.Render(" copy"),
	}
	if m.focus == focusEditor && (m.tab == tabParams || m.tab == tabHeaders) {
		parts = append(parts,
			ShortcutKeyStyle.Render("ctrl+n")+ShortcutDescStyle.Render(" add"),
			ShortcutKeyStyle.Render("ctrl+x")+ShortcutDescStyle.Render(" remove"),
			ShortcutKeyStyle.Render("ctrl+g")+ShortcutDescStyle.Render(" toggle"),
		)
	}
	right := strings.Join(parts, "  ")

	left := NoticeStyle.Render(m.notice)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
