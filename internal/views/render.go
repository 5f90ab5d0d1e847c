package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	InputPane  string
	ListPane   string
	SidePane   string
	StatusLine string
	Footer     string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusStyle  = panelStyle.BorderForeground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	list := panelStyle.Width(58).Render(data.InputPane + "\n\n" + data.ListPane)
	row := list
	if strings.TrimSpace(data.SidePane) != "" {
		side := panelStyle.Width(40).Render(data.SidePane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, list, side)
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("## Keys\n\n")
	for _, line := range data.Bindings {
		b.WriteString("- " + line + "\n")
	}
	return "help:\n" + RenderMarkdown(b.String()) + "\n" + data.HelpView
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return "command: /" + input
}

// InputPane wraps the text input, marking it when it has focus.
func InputPane(inputView string, focused bool) string {
	if focused {
		return focusStyle.Render(inputView)
	}
	return panelStyle.Render(inputView)
}
