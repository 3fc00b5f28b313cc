package heading

import (
	"sort"
	"strings"

	"github.com/tsawler/pdfoutline/lines"
)

// Thresholds are the minimum sizes of H1-H4 for the generic strategy
type Thresholds [4]float64

// GenericThresholds derives H1-H4 size floors from the distinct sizes of
// all lines, largest first. Missing levels fall back to fractions of the
// largest size. An empty input yields all-zero thresholds.
func GenericThresholds(all []lines.Line, config Config) Thresholds {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, l := range all {
		if !seen[l.Size] {
			seen[l.Size] = true
			sizes = append(sizes, l.Size)
		}
	}
	if len(sizes) == 0 {
		return Thresholds{}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	top := sizes[0]
	th := Thresholds{top, top * config.H2Ratio, top * config.H3Ratio, top * config.H4Ratio}
	for i := 1; i < len(th) && i < len(sizes); i++ {
		th[i] = sizes[i]
	}
	return th
}

// Level returns the highest level whose threshold size meets, or
// LevelUnknown when size is below all of them
func (th Thresholds) Level(size float64) Level {
	for i, floor := range th {
		if size >= floor {
			return Level(i + 1)
		}
	}
	return LevelUnknown
}

// Generic classifies lines with size thresholds. Each text is considered
// once across the whole document; title lines, short texts and file-like
// names are skipped, and H3/H4 must be bold.
func Generic(all []lines.Line, state *RunState, config Config) []Heading {
	th := GenericThresholds(all, config)
	outline := []Heading{}

	for _, l := range all {
		if state.TitleLines.Has(l.Text) || !state.MarkText(l.Text) {
			continue
		}

		text := strings.TrimSpace(l.Text)
		if len([]rune(text)) < config.MinGenericLength || hasAnySuffix(strings.ToLower(l.Text), config.FileSuffixes) {
			continue
		}

		level := th.Level(l.Size)
		if level == LevelUnknown {
			continue
		}
		if (level == H3 || level == H4) && !l.Bold {
			continue
		}

		outline = append(outline, Heading{Level: level, Text: text, Page: l.Page})
	}

	return outline
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if suf != "" && strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
