package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

// FormatGoalList renders the user's goals inside a bordered box.
func FormatGoalList(goals []*domain.Goal) string {
	headers := []string{"ID", "TITLE", "TARGET", "WINDOW", "TAGS"}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			TruncID(g.ID),
			Bold(g.Title),
			FormatMinutes(g.TargetMinutesPerDay) + Dim("/day"),
			DateRange(g.StartDate, g.EndDate),
			TagList(g.Tags),
		})
	}
	return RenderBox("Goals", RenderTable(headers, rows))
}

// FormatGoalDetail renders one goal's fields.
func FormatGoalDetail(g *domain.Goal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Bold(g.Title))
	if g.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", g.Description)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:     "), g.ID)
	fmt.Fprintf(&b, "%s %s per day\n", Dim("Target: "), FormatMinutes(g.TargetMinutesPerDay))
	fmt.Fprintf(&b, "%s %s\n", Dim("Window: "), DateRange(g.StartDate, g.EndDate))
	fmt.Fprintf(&b, "%s %s", Dim("Tags:   "), TagList(g.Tags))
	return RenderBox("Goal", b.String())
}

// FormatProgressList renders progress entries with their full IDs, which the
// edit and remove commands take. titles maps goal IDs to titles; entries for
// unknown goals show the truncated goal ID.
func FormatProgressList(entries []*domain.ProgressEntry, titles map[string]string) string {
	headers := []string{"ID", "DATE", "GOAL", "MINUTES", "MET", "NOTE"}
	rows := make([][]string, 0, len(entries))
	total := 0
	for _, p := range entries {
		goal, ok := titles[p.GoalID]
		if !ok {
			goal = TruncID(p.GoalID)
		}
		rows = append(rows, []string{
			Dim(p.ID),
			FormatDay(p.Date),
			goal,
			FormatMinutes(p.MinutesSpent),
			TargetMark(p.TargetMet),
			Dim(p.Note),
		})
		total += p.MinutesSpent
	}
	table := RenderTableAligned(headers, rows, map[int]bool{3: true})
	footer := fmt.Sprintf("%s %s across %d entries", Dim("Total:"), Bold(FormatMinutes(total)), len(entries))
	return RenderBox("Progress", table+"\n"+footer)
}
