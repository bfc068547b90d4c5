package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsinha/todotui/internal/commands"
	"github.com/rsinha/todotui/internal/model"
	"github.com/rsinha/todotui/internal/tasks"
)

func (m Model) handlePaletteKey(ctx context.Context, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette = CommandPaletteState{}
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(ctx), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand(ctx context.Context) Model {
	raw := m.Palette.Input
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.slot.Notify(err.Error(), tasks.SeverityDanger)
		return m
	}

	clearRequested := false
	_, err = commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.repo.Add(ctx, a.Text)
			return commands.Result{Message: "task added"}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.Filter = model.FilterMode(f.Mode)
			m.Cursor = 0
			m.slot.Notify(fmt.Sprintf("Filter: %s", f.Mode), tasks.SeverityInfo)
			return commands.Result{Message: "filter set"}, nil
		},
		Clear: func() (commands.Result, error) {
			clearRequested = true
			return commands.Result{Message: "clear requested"}, nil
		},
		Theme: func(t commands.ThemeArgs) (commands.Result, error) {
			m.Dark = t.Variant == "dark"
			persistThemePreference(ctx, m.store, m.Dark)
			m.slot.Notify(fmt.Sprintf("Theme: %s", t.Variant), tasks.SeverityInfo)
			return commands.Result{Message: "theme set"}, nil
		},
	})
	if err != nil {
		m.slot.Notify(err.Error(), tasks.SeverityDanger)
		return m
	}

	m.refresh()
	if clearRequested {
		return m.requestClearCompleted(ctx)
	}
	return m
}
