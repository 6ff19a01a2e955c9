package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/rating"
)

// Output styles shared by the commands.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	correctStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	wrongStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// shortID abbreviates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// printQuestionLine writes a one-line summary for list/search output.
func printQuestionLine(q *bank.Question) {
	line := fmt.Sprintf("%s  %-40.40s  %7.1f %-10s",
		dimStyle.Render(shortID(q.ID)), q.Text, q.Rating, rating.DifficultyCategory(q.Rating))
	if len(q.Tags) > 0 {
		line += "  " + dimStyle.Render(fmt.Sprintf("%v", q.TagList()))
	}
	fmt.Println(line)
}
