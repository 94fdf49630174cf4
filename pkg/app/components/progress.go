package components

import (
	"strings"

	"github.com/kerbaras/tirinha/pkg/app/styles"
)

// PositionBar renders where the current strip sits in the slideshow
func PositionBar(index, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}
	return renderProgressBar(index+1, total, width)
}

func renderProgressBar(current, total, width int) string {
	if total == 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := styles.ProgressBarStyle.Render(strings.Repeat("█", filled))
	empty := styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
	return bar + empty
}
