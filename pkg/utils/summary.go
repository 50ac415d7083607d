package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderSummary formats label/value pairs as an aligned console box.
func RenderSummary(title string, rows [][2]string) string {
	labelWidth := 0
	lineWidth := runewidth.StringWidth(title)
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > labelWidth {
			labelWidth = w
		}
	}
	for _, row := range rows {
		w := labelWidth + 2 + runewidth.StringWidth(row[1])
		if w > lineWidth {
			lineWidth = w
		}
	}

	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n")
	for _, row := range rows {
		pad := strings.Repeat(" ", labelWidth-runewidth.StringWidth(row[0]))
		b.WriteString(row[0] + pad + "  " + row[1] + "\n")
	}
	b.WriteString(rule)
	return b.String()
}
