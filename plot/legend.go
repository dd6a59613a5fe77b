package plot

import (
	"gonum.org/v1/plot"
)

type legendEntry struct {
	label  string
	thumbs []plot.Thumbnailer
}

// Legend collects entries before they are written to a plot, so that they can
// be reordered or merged across axes
type Legend struct {
	entries []legendEntry
}

func NewLegend() *Legend {
	return &Legend{}
}

func (l *Legend) Add(label string, thumbs ...plot.Thumbnailer) {
	l.entries = append(l.entries, legendEntry{label, thumbs})
}

func (l *Legend) Len() int {
	return len(l.entries)
}

func (l *Legend) Labels() []string {
	labels := make([]string, len(l.entries))
	for i, e := range l.entries {
		labels[i] = e.label
	}
	return labels
}

// Reverse flips the order of entries in place
func (l *Legend) Reverse() *Legend {
	for i, j := 0, len(l.entries)-1; i < j; i, j = i+1, j-1 {
		l.entries[i], l.entries[j] = l.entries[j], l.entries[i]
	}
	return l
}

// Gather concatenates legends, keeping the first entry of each label
func Gather(legends ...*Legend) *Legend {
	gathered := NewLegend()
	seen := make(map[string]bool)
	for _, l := range legends {
		if l == nil {
			continue
		}
		for _, e := range l.entries {
			if seen[e.label] {
				continue
			}
			seen[e.label] = true
			gathered.entries = append(gathered.entries, e)
		}
	}
	return gathered
}

// Apply writes the entries to the legend of p
func (l *Legend) Apply(p *plot.Plot) {
	for _, e := range l.entries {
		p.Legend.Add(e.label, e.thumbs...)
	}
}
