package update

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsinha/todotui/internal/model"
	"github.com/rsinha/todotui/internal/view"
	"github.com/rsinha/todotui/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Confirm.Active {
			return m.handleConfirmKey(ctx, typed), nil
		}
		if m.Palette.Active {
			return m.handlePaletteKey(ctx, typed)
		}
		if m.CaptureMode {
			return m.handleCaptureKey(ctx, typed)
		}
		return m.handleListKey(ctx, typed)
	case AddTaskMsg:
		m.repo.Add(ctx, typed.Text)
		m.refresh()
		return m, nil
	case ToggleTaskMsg:
		m.repo.Toggle(ctx, typed.ID)
		m.refresh()
		return m, nil
	case DeleteTaskMsg:
		m.repo.Delete(ctx, typed.ID)
		m.refresh()
		return m, nil
	case SetFilterMsg:
		if typed.Mode.IsValid() {
			m.Filter = typed.Mode
			m.Cursor = 0
			m.refresh()
		}
		return m, nil
	case ClearCompletedRequestMsg:
		return m.requestClearCompleted(ctx), nil
	case SetThemeMsg:
		m.Dark = typed.Dark
		persistThemePreference(ctx, m.store, m.Dark)
		return m, nil
	}

	return m, nil
}

func (m Model) handleCaptureKey(ctx context.Context, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.CaptureMode = false
		m.quickAddInput.Blur()
		return m, nil
	case "enter":
		m.repo.Add(ctx, m.quickAddInput.Value())
		m.quickAddInput.SetValue("")
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(ctx context.Context, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Capture):
		m.CaptureMode = true
		m.quickAddInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.Rows)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		if row, ok := m.selectedRow(); ok {
			m.repo.Toggle(ctx, row.ID)
			m.refresh()
		}
	case key.Matches(msg, m.Keys.Delete):
		if row, ok := m.selectedRow(); ok {
			m.repo.Delete(ctx, row.ID)
			m.refresh()
		}
	case key.Matches(msg, m.Keys.FilterAll):
		m.Filter = model.FilterAll
		m.Cursor = 0
		m.refresh()
	case key.Matches(msg, m.Keys.FilterAct):
		m.Filter = model.FilterActive
		m.Cursor = 0
		m.refresh()
	case key.Matches(msg, m.Keys.FilterCmp):
		m.Filter = model.FilterCompleted
		m.Cursor = 0
		m.refresh()
	case key.Matches(msg, m.Keys.Clear):
		return m.requestClearCompleted(ctx), nil
	case key.Matches(msg, m.Keys.Theme):
		m.Dark = !m.Dark
		persistThemePreference(ctx, m.store, m.Dark)
	case key.Matches(msg, m.Keys.Palette):
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
	}
	return m, nil
}

// requestClearCompleted opens the confirm modal, or short-circuits through
// the repository's no-op notification when nothing is completed.
func (m Model) requestClearCompleted(ctx context.Context) Model {
	if m.repo.CompletedCount() == 0 {
		m.repo.ClearCompleted(ctx, nil)
		return m
	}
	m.Confirm = ConfirmState{Active: true, Prompt: m.repo.ClearPrompt()}
	return m
}

// handleConfirmKey is the modal decision: while active no other interaction
// is processed.
func (m Model) handleConfirmKey(ctx context.Context, msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y":
		m.repo.ClearCompleted(ctx, func(string) bool { return true })
		m.Confirm = ConfirmState{}
		m.refresh()
	case "n", "N", "esc":
		m.Confirm = ConfirmState{}
	}
	return m
}

func (m Model) View() string {
	theme := views.ThemeFor(m.Dark)

	if m.HelpVisible {
		return views.RenderApp(theme, views.AppData{
			Header: m.headerLine(),
			Body:   views.RenderHelp(m.Dark),
			Footer: "? close help",
		})
	}

	body := m.quickAddInput.View() + "\n" +
		views.RenderFilterTabs(theme, views.FilterTabsData{
			Active:    string(m.Filter),
			Total:     m.Counters.Total,
			Remaining: m.Counters.Remaining,
		}) + "\n\n" +
		m.renderTaskList(theme)

	if m.Confirm.Active {
		body += "\n\n" + views.RenderConfirm(theme, m.Confirm.Prompt)
	}
	if m.Palette.Active {
		body += "\n\n" + views.RenderCommandPalette(true, m.commandInput.View())
	}

	notification := ""
	if n := m.slot.Current(); n != nil {
		notification = views.RenderNotification(theme, string(n.Severity), n.Message)
	}

	return views.RenderApp(theme, views.AppData{
		Header:       m.headerLine(),
		Body:         body,
		Notification: notification,
		Footer:       m.helpModel.View(m.Keys),
	})
}

func (m Model) renderTaskList(theme views.Theme) string {
	rows := make([]views.TaskRowData, 0, len(m.Rows))
	for _, t := range m.Rows {
		rows = append(rows, views.TaskRowData{ID: t.ID, Text: t.Text, Completed: t.Completed})
	}
	return views.RenderTaskList(theme, views.TaskListData{
		Rows:         rows,
		Cursor:       m.Cursor,
		EmptyMessage: view.EmptyMessage(m.Filter),
	})
}

func (m Model) headerLine() string {
	return fmt.Sprintf("todotui | filter: %s", m.Filter)
}
