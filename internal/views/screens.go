package views

import (
	"fmt"
	"strings"
	"unicode"
)

type TaskRowData struct {
	ID        int64
	Text      string
	Completed bool
}

type TaskListData struct {
	Rows         []TaskRowData
	Cursor       int
	EmptyMessage string
}

type FilterTabsData struct {
	Active    string
	Total     int
	Remaining int
}

// SanitizeText neutralizes control and escape characters so task text can
// never corrupt the rendered tree. Tabs collapse to a single space.
func SanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			// dropped, including ESC so embedded ANSI sequences are inert
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RenderTaskList rebuilds the whole visible list from the projection. An
// empty projection renders exactly one empty-state line.
func RenderTaskList(theme Theme, data TaskListData) string {
	if len(data.Rows) == 0 {
		return theme.Empty.Render(data.EmptyMessage)
	}
	lines := make([]string, 0, len(data.Rows))
	for i, row := range data.Rows {
		checkbox := "[ ]"
		style := theme.Row
		if row.Completed {
			checkbox = "[x]"
			style = theme.RowDone
		}
		pointer := "  "
		if i == data.Cursor {
			pointer = theme.Cursor.Render("> ")
		}
		lines = append(lines, pointer+checkbox+" "+style.Render(SanitizeText(row.Text))+"  "+theme.Footer.Render("✗"))
	}
	return strings.Join(lines, "\n")
}

func RenderFilterTabs(theme Theme, data FilterTabsData) string {
	tabs := make([]string, 0, 3)
	for _, mode := range []string{"all", "active", "completed"} {
		if mode == data.Active {
			tabs = append(tabs, theme.TabActive.Render(mode))
		} else {
			tabs = append(tabs, theme.Tab.Render(mode))
		}
	}
	counters := theme.Counter.Render(fmt.Sprintf("%d total · %d remaining", data.Total, data.Remaining))
	return strings.Join(tabs, "  ") + "   " + counters
}

func RenderNotification(theme Theme, severity, message string) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	style := theme.Info
	switch severity {
	case "success":
		style = theme.Success
	case "warning":
		style = theme.Warning
	case "danger":
		style = theme.Danger
	}
	return style.Render(SanitizeText(message))
}

func RenderConfirm(theme Theme, message string) string {
	return theme.Warning.Render(SanitizeText(message)) + "\n" + theme.Footer.Render("y confirm | n / esc cancel")
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

const helpMarkdown = `# todotui

## Keys

| Key | Action |
| --- | --- |
| enter | add the typed task |
| space | toggle the selected task |
| x / delete | delete the selected task |
| 1 / 2 / 3 | filter all / active / completed |
| c | clear completed tasks |
| t | toggle dark mode |
| / | command palette |
| ? | toggle this help |
| q | quit |

## Commands

` + "`add <text>`, `filter all|active|completed`, `clear`, `theme dark|light`" + `
`

func RenderHelp(dark bool) string {
	return RenderMarkdown(helpMarkdown, dark)
}
