package tui

import (
	"strings"

	"github.com/MKhiriev/dev-connector/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

// dateLayout renders entry dates as YYYY/MM/DD.
const dateLayout = "2006/01/02"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// formatDateRange renders "from - to", or "from -  Now" for an ongoing entry.
func formatDateRange(from models.Date, to *models.Date) string {
	start := from.Format(dateLayout)
	if to == nil || to.IsZero() {
		return start + " -  Now"
	}
	return start + " - " + to.Format(dateLayout)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func errorLine(msg string) string {
	return errorStyle.Render("Error: " + msg)
}
