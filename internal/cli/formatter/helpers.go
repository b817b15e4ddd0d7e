package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into a short form such as "1h 30m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatDay renders a calendar day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// DateRange renders "start → end", or "start → open" without an end.
func DateRange(start time.Time, end *time.Time) string {
	if end == nil {
		return FormatDay(start) + " → " + Dim("open")
	}
	return FormatDay(start) + " → " + FormatDay(*end)
}

// TagList renders tags as purple #labels, or a dim dash when there are none.
func TagList(tags []string) string {
	if len(tags) == 0 {
		return Dim("--")
	}
	labels := make([]string, len(tags))
	for i, t := range tags {
		labels[i] = "#" + t
	}
	return StylePurple.Render(strings.Join(labels, " "))
}

// Streak renders a day count such as "3d", dimmed when zero.
func Streak(days int) string {
	if days == 0 {
		return Dim("0d")
	}
	return StyleBlue.Render(fmt.Sprintf("%dd", days))
}

// TargetMark renders a check for a met target and a dim dot otherwise.
func TargetMark(met bool) string {
	if met {
		return StyleGreen.Render("✔")
	}
	return Dim("·")
}
