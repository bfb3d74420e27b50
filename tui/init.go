package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nojima/apitester/exchange"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/logging"
)

// Config is what the composer needs from the caller.
type Config struct {
	// Draft is edited in place. Nil starts from input.NewDraft.
	Draft    *input.Draft
	Executor *exchange.Executor
	Logger   *logging.Logger
}

func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)
	return sp
}

func newURLInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "https://api.example.com/resource"
	ti.Prompt = ""
	ti.CharLimit = 8192
	ti.Width = 60
	ti.SetValue(value)
	ti.TextStyle = lipgloss.NewStyle().Foreground(TextColor)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(DimColor)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(AccentColor)
	return ti
}

func newBodyInput(value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = `{"key": "value"}`
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(editorHeight - 1)
	ta.SetValue(value)
	return ta
}

func newAuthInput(t input.AuthType, value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Placeholder = authPlaceholder(t)
	ti.SetValue(value)
	return ti
}

func authPlaceholder(t input.AuthType) string {
	switch t {
	case input.AuthBearer:
		return "Token"
	case input.AuthBasic:
		return "username:password"
	case input.AuthAPIKey:
		return "API key"
	default:
		return ""
	}
}

// New builds the composer around config.Draft.
func New(ctx context.Context, config Config) Model {
	draft := config.Draft
	if draft == nil {
		draft = input.NewDraft()
	}
	if draft.Params == nil {
		draft.Params = input.NewEntryList()
	}
	if draft.Headers == nil {
		draft.Headers = input.NewEntryList()
	}
	if draft.AuthType == "" {
		draft.AuthType = input.AuthNone
	}

	m := Model{
		ctx:       ctx,
		draft:     draft,
		executor:  config.Executor,
		logger:    config.Logger.OrDiscard().WithComponent("tui"),
		focus:     focusURL,
		tab:       tabParams,
		url:       newURLInput(draft.URL),
		params:    newKVEditor(draft.Params),
		headers:   newKVEditor(draft.Headers),
		body:      newBodyInput(draft.Body),
		authValue: newAuthInput(draft.AuthType, draft.AuthValue),
		spinner:   newSpinner(),
		renderer:  newGlamourRenderer(80),
	}
	m.url.Focus()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
