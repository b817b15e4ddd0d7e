package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderRateBar renders a 0-100 success rate as a bar like [████░░░░]  45.0%,
// colored by RateColor.
func RenderRateBar(rate float64, width int) string {
	rate = min(max(rate, 0), 100)
	width = max(width, 2)

	filled := min(int(rate/100*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %5.1f%%", RateColor(rate).Render(bar), rate)
}

// RenderDayStrip renders one cell per day of a month: filled when the target
// was met, half when progress was logged below target, empty otherwise.
func RenderDayStrip(daysInMonth int, logged, met map[int]bool) string {
	var b strings.Builder
	for d := 1; d <= daysInMonth; d++ {
		switch {
		case met[d]:
			b.WriteString(StyleGreen.Render(filledBlock))
		case logged[d]:
			b.WriteString(StyleYellow.Render("▄"))
		default:
			b.WriteString(StyleDim.Render(emptyBlock))
		}
	}
	return b.String()
}
