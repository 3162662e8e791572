// Package waveart turns a surf analysis into a small ASCII wave. It prefers
// the wave the analyst drew inside the prose; when none is found it draws a
// triangular swell itself, scaled from the reported wave height.
package waveart

import (
	"math"
	"strings"
)

const (
	waveGlyphs = `~/\|_()*`
	minRows    = 3
	maxRows    = 8
)

// Render produces the lines of wave art for a report. analysis may be empty;
// extraction failures of any kind fall back to synthesis, so Render never
// errors and always returns at least one line.
func Render(analysis string, waveHeight float64) []string {
	if lines := extract(analysis); len(lines) > 0 {
		return lines
	}
	return synthesize(waveHeight)
}

// extract scans the analysis text for contiguous lines of wave glyphs.
// Prose before the art is skipped; once art lines have been collected, the
// first blank line ends the scan and everything after it is ignored.
func extract(analysis string) []string {
	if strings.TrimSpace(analysis) == "" {
		return nil
	}

	var (
		art     []string
		started bool
	)
	for _, line := range strings.Split(analysis, "\n") {
		if strings.ContainsAny(line, waveGlyphs) {
			art = append(art, line)
			started = true
			continue
		}
		if started && strings.TrimSpace(line) == "" {
			break
		}
	}

	for _, line := range art {
		if strings.TrimSpace(line) != "" {
			return art
		}
	}
	return nil
}

// synthesize draws a widening triangle of tildes over a short base. Height
// is compressed to rows/2 and clamped so tiny or huge swells still produce
// readable art: the apex row holds one glyph, the widest 2*rows-1.
func synthesize(waveHeight float64) []string {
	rows := int(math.Round(waveHeight / 2))
	if rows < minRows {
		rows = minRows
	}
	if rows > maxRows {
		rows = maxRows
	}

	lines := make([]string, 0, rows+1)
	for i := 0; i < rows; i++ {
		lines = append(lines, strings.Repeat(" ", rows-1-i)+strings.Repeat("~", 2*i+1))
	}
	lines = append(lines, strings.Repeat(" ", rows-1)+"___")
	return lines
}
