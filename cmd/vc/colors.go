package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jusjinuk/vibecite/internal/session"
)

// vibecite color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber

	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue

	ColorMuted = lipgloss.Color("#6B7280") // Gray
	ColorBold  = lipgloss.Color("#F3F4F6") // Almost White
	ColorNeon  = lipgloss.Color("#22D3EE") // Bright Cyan
)

// CLI Styles - for colorful command-line output
var (
	cliTitle     = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	cliSubtitle  = lipgloss.NewStyle().Italic(true).Foreground(ColorSecondary)
	cliSuccess   = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	cliError     = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	cliWarning   = lipgloss.NewStyle().Foreground(ColorWarning)
	cliInfo      = lipgloss.NewStyle().Foreground(ColorInfo)
	cliLabel     = lipgloss.NewStyle().Foreground(ColorNeon).Bold(true)
	cliValue     = lipgloss.NewStyle().Foreground(ColorBold)
	cliMuted     = lipgloss.NewStyle().Foreground(ColorMuted)
	cliHighlight = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	cliBadgeSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000")).Background(ColorSuccess).Padding(0, 1)
	cliBadgeError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFF")).Background(ColorError).Padding(0, 1)
)

// Per-status styling for the ls table and search summaries.
var statusStyles = map[session.Status]lipgloss.Style{
	session.StatusPending:  lipgloss.NewStyle().Foreground(ColorWarning),
	session.StatusResolved: lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
	session.StatusFailed:   lipgloss.NewStyle().Bold(true).Foreground(ColorError),
}

func renderStatus(s session.Status) string {
	style, ok := statusStyles[s]
	if !ok {
		style = cliMuted
	}
	return style.Render(fmt.Sprintf("%-8s", string(s)))
}

func printTitle(emoji, title string) {
	fmt.Println()
	fmt.Println(cliTitle.Render(emoji + " " + title))
	fmt.Println(cliMuted.Render("─────────────────────────────────────────────"))
}

func printKeyValue(key, value string) {
	fmt.Printf("%s %s\n", cliLabel.Render(key+":"), cliValue.Render(value))
}

func printKeyValueHighlight(key, value string) {
	fmt.Printf("%s %s\n", cliLabel.Render(key+":"), cliHighlight.Render(value))
}

func printSuccess(message string) {
	fmt.Println(cliBadgeSuccess.Render("SUCCESS") + " " + cliSuccess.Render(message))
}

func printError(message string) {
	fmt.Println(cliBadgeError.Render("ERROR") + " " + cliError.Render(message))
}

func printInfo(message string) {
	fmt.Println(cliInfo.Render("ℹ️  " + message))
}

func printWarning(message string) {
	fmt.Println(cliWarning.Render("⚠️  " + message))
}

func printNewline() {
	fmt.Println()
}
