package textmetrics

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Cells measures strings in terminal cells. Escape sequences are ignored so
// already-styled text measures the same as its plain form.
type Cells struct{}

func (Cells) Measure(text string) float64 {
	return float64(runewidth.StringWidth(ansi.Strip(text)))
}
