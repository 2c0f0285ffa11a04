package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
)

var (
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	detailPane     = paneStyle.Copy().BorderForeground(lipgloss.Color("62"))
	selectedStyle  = lipgloss.NewStyle().Reverse(true)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStatus    = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	sidebarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	rulerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	rulerTickStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	nowMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
)

// toneColors maps a deployment tone to its bar and badge colors.
var toneColors = map[deploy.Tone]struct {
	bg, fg, badgeBg, badgeFg lipgloss.Color
}{
	deploy.ToneNeutral: {bg: "236", fg: "252", badgeBg: "239", badgeFg: "250"},
	deploy.ToneSuccess: {bg: "22", fg: "157", badgeBg: "28", badgeFg: "194"},
	deploy.ToneInfo:    {bg: "24", fg: "153", badgeBg: "25", badgeFg: "189"},
	deploy.ToneWarning: {bg: "94", fg: "229", badgeBg: "136", badgeFg: "230"},
	deploy.ToneDanger:  {bg: "52", fg: "217", badgeBg: "88", badgeFg: "224"},
}

// itemStyle returns the bar style for a deployment status.
func itemStyle(style deploy.Style) lipgloss.Style {
	c := toneColors[style.Item]
	return lipgloss.NewStyle().Background(c.bg).Foreground(c.fg)
}

// badgeStyle returns the badge style for a deployment status.
func badgeStyle(style deploy.Style) lipgloss.Style {
	c := toneColors[style.Badge]
	return lipgloss.NewStyle().Background(c.badgeBg).Foreground(c.badgeFg).Bold(true)
}
