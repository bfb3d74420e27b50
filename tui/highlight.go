package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/nojima/apitester/output"
	"github.com/tidwall/gjson"
)

// highlightJSON renders data as a highlighted JSON code block. Anything
// that is not JSON, or that glamour fails on, is returned rendered by
// output.RenderBody.
func highlightJSON(renderer *glamour.TermRenderer, data string) string {
	rendered := output.RenderBody(data)
	if renderer == nil || !gjson.Valid(data) {
		return rendered
	}

	var sb strings.Builder
	sb.WriteString("```json\n")
	sb.WriteString(rendered)
	sb.WriteString("\n```")

	out, err := renderer.Render(sb.String())
	if err != nil {
		return rendered
	}
	return strings.Trim(out, "\n")
}

func newGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 40 {
		width = 40
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return renderer
}
