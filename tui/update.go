package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nojima/apitester/exchange"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/logging"
)

const (
	editorHeight = 8
	// url bar, tab bar, two separators, meta line and footer
	chromeHeight = 6
)

// sendRequest runs req off the event loop and reports back with resultMsg.
func sendRequest(ctx context.Context, executor *exchange.Executor, req *exchange.Request) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: executor.Do(ctx, req)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg), nil

	case resultMsg:
		return m.handleResult(msg), nil

	case spinner.TickMsg:
		if !m.executor.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the widget that has focus.
func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusURL:
		m.url, cmd = m.url.Update(msg)
		m.draft.URL = m.url.Value()
	case focusEditor:
		switch m.tab {
		case tabParams:
			if key, ok := msg.(tea.KeyMsg); ok {
				m.params, cmd = m.params.Update(key)
			} else {
				m.params.cell, cmd = m.params.cell.Update(msg)
			}
		case tabHeaders:
			if key, ok := msg.(tea.KeyMsg); ok {
				m.headers, cmd = m.headers.Update(key)
			} else {
				m.headers.cell, cmd = m.headers.cell.Update(msg)
			}
		case tabBody:
			m.body, cmd = m.body.Update(msg)
			m.draft.Body = m.body.Value()
		case tabAuth:
			m.authValue, cmd = m.authValue.Update(msg)
			m.draft.AuthValue = m.authValue.Value()
		}
	case focusResponse:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	viewportHeight := m.height - chromeHeight - editorHeight
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	contentWidth := m.width - 2
	if contentWidth < 20 {
		contentWidth = 20
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = viewportHeight
	}

	badge := len(m.draft.Method) + 4
	m.url.Width = contentWidth - badge
	m.authValue.Width = contentWidth - 4
	m.params.cell.Width = contentWidth / 2
	m.headers.cell.Width = contentWidth / 2
	m.body.SetWidth(contentWidth)
	if r := newGlamourRenderer(contentWidth - 4); r != nil {
		m.renderer = r
	}

	m.updateViewportContent()
	return m
}

func (m Model) handleResult(msg resultMsg) Model {
	m.executor.Finish(msg.result)
	if f, ok := msg.result.(*exchange.Failure); ok {
		m.logger.Debug("request failed", "error", logging.Mask(f.Error))
	}
	m.updateViewportContent()
	m.viewport.GotoTop()
	return m
}

// setFocus moves keyboard focus to area, blurring everything else.
func (m Model) setFocus(area focusArea) (Model, tea.Cmd) {
	m.focus = area
	m.url.Blur()
	m.params.blur()
	m.headers.blur()
	m.body.Blur()
	m.authValue.Blur()

	switch area {
	case focusURL:
		return m, m.url.Focus()
	case focusEditor:
		return m.focusTab()
	}
	return m, nil
}

func (m Model) focusTab() (Model, tea.Cmd) {
	m.params.blur()
	m.headers.blur()
	m.body.Blur()
	m.authValue.Blur()
	switch m.tab {
	case tabParams:
		return m, m.params.focus()
	case tabHeaders:
		return m, m.headers.focus()
	case tabBody:
		return m, m.body.Focus()
	case tabAuth:
		if m.draft.AuthType == input.AuthNone {
			return m, nil
		}
		return m, m.authValue.Focus()
	}
	return m, nil
}
