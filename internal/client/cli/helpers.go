package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/quotesync/internal/client/session"
)

const (
	annotationNoStorage = "noStorage"
	annotationDaemon    = "daemon"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

func successBanner(msg string) string { return successStyle.Render("✓ " + msg) }
func warningBanner(msg string) string { return warningStyle.Render("⚠️  " + msg) }
func errorBanner(msg string) string { return errorStyle.Render("✗ " + msg) }
func infoBanner(msg string) string { return infoStyle.Render(msg) }

func title(text string) string {
	return titleStyle.Render("=== " + text + " ===")
}

// levelBanner отображает статус сессии в стиле его уровня
func levelBanner(level session.Level, msg string) string {
	switch level {
	case session.LevelSuccess:
		return successBanner(msg)
	case session.LevelWarning:
		return warningBanner(msg)
	case session.LevelError:
		return errorBanner(msg)
	default:
		return infoBanner(msg)
	}
}

// truncate shortens text to n runes for one-line listings
func truncate(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n-3]) + "..."
}
