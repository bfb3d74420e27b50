package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/nojima/apitester/exchange"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/logging"
)

type focusArea int

const (
	focusURL focusArea = iota
	focusEditor
	focusResponse
	focusCount
)

// tab is a composer section below the URL bar.
type tab int

const (
	tabParams tab = iota
	tabHeaders
	tabBody
	tabAuth
	tabCount
)

var tabNames = [...]string{"Params", "Headers", "Body", "Auth"}

func (t tab) String() string {
	return tabNames[t]
}

// Model is the Bubble Tea model of the request composer. The draft is the
// single source of truth; widgets write into it as they change.
type Model struct {
	ctx      context.Context
	draft    *input.Draft
	executor *exchange.Executor
	logger   *logging.Logger

	focus focusArea
	tab   tab

	url       textinput.Model
	params    kvEditor
	headers   kvEditor
	body      textarea.Model
	authValue textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	renderer  *glamour.TermRenderer

	width  int
	height int
	ready  bool
	notice string
}

// resultMsg carries the outcome of a request sent by sendRequest.
type resultMsg struct {
	result exchange.Result
}
