// Package tui is the interactive request composer: a URL bar with a method
// badge, Params/Headers/Body/Auth tabs and a response pane.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the composer until the user quits.
func Run(ctx context.Context, config Config) error {
	m := New(ctx, config)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}
