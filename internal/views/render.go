package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

type AppData struct {
	Header       string
	Body         string
	Notification string
	Footer       string
}

func RenderApp(theme Theme, data AppData) string {
	lines := []string{
		theme.Header.Render(data.Header),
		theme.Panel.Width(58).Render(data.Body),
	}
	if data.Notification != "" {
		lines = append(lines, theme.Panel.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, theme.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
