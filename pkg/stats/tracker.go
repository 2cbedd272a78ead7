package stats

import (
	"iter"
	"log"
	"strings"
)

// Warning is a set of advisory flags raised by FutureValue.
// None of them stop the computation.
type Warning uint8

const (
	WarnNoData Warning = 1 << iota
	WarnStartOutOfRange
	WarnEndOutOfRange
	WarnStartNotBeforeEnd
)

var warningText = []struct {
	flag Warning
	text string
}{
	{WarnNoData, "No data is available!"},
	{WarnStartOutOfRange, "Start year is outside available data range!"},
	{WarnEndOutOfRange, "End year is outside available data range!"},
	{WarnStartNotBeforeEnd, "Start year is equal or greater than end year!"},
}

// Has reports whether all flags in f are set.
func (w Warning) Has(f Warning) bool {
	return w&f == f
}

// Messages returns one human readable line per raised flag.
func (w Warning) Messages() []string {
	var msgs []string
	for _, wt := range warningText {
		if w.Has(wt.flag) {
			msgs = append(msgs, wt.text)
		}
	}
	return msgs
}

func (w Warning) String() string {
	if w == 0 {
		return "none"
	}
	return strings.Join(w.Messages(), " ")
}

// Projection is the result of compounding a principal over a year range.
type Projection struct {
	Value    float64
	Warnings Warning
}

// RateTracker stores a rate per year in insertion order.
//
// A tracker is meant to be reused: fill it, query it, clear it, rename it
// and fill it again for the next country.
type RateTracker struct {
	label   string
	entries []Entry
	index   map[int]int // year -> position in entries
	logger  *log.Logger
}

// NewRateTracker returns an empty tracker for the given label.
func NewRateTracker(label string) *RateTracker {
	return &RateTracker{
		label: label,
		index: make(map[int]int),
	}
}

// SetLogger sets a logger that receives every warning raised by
// FutureValue. A nil logger disables it.
func (t *RateTracker) SetLogger(l *log.Logger) {
	t.logger = l
}

func (t *RateTracker) Label() string {
	return t.label
}

func (t *RateTracker) Rename(label string) {
	t.label = label
}

func (t *RateTracker) Len() int {
	return len(t.entries)
}

// Insert sets the rate for year. An existing year keeps its position.
func (t *RateTracker) Insert(year int, rate float64) {
	if i, ok := t.index[year]; ok {
		t.entries[i].Rate = rate
		return
	}
	t.index[year] = len(t.entries)
	t.entries = append(t.entries, Entry{Year: year, Rate: rate})
}

// Clear removes all entries. The label is kept.
func (t *RateTracker) Clear() {
	t.entries = nil
	t.index = make(map[int]int)
}

// Max returns the entry with the greatest rate. On ties the entry inserted
// first wins. It panics if the tracker is empty.
func (t *RateTracker) Max() Entry {
	return t.extreme("Max", func(a, b float64) bool { return a > b })
}

// Min returns the entry with the smallest rate. On ties the entry inserted
// first wins. It panics if the tracker is empty.
func (t *RateTracker) Min() Entry {
	return t.extreme("Min", func(a, b float64) bool { return a < b })
}

func (t *RateTracker) extreme(op string, better func(a, b float64) bool) Entry {
	if len(t.entries) == 0 {
		log.Panicf("stats: %s called on empty tracker %q", op, t.label)
	}
	best := t.entries[0]
	for _, e := range t.entries[1:] {
		if better(e.Rate, best.Rate) {
			best = e
		}
	}
	return best
}

// FutureValue applies principal *= (1 - rate) for every stored year in
// [startYear, endYear), in insertion order. Out of range or inverted
// arguments only raise warnings; the value is computed from whatever
// entries fall inside the range.
func (t *RateTracker) FutureValue(principal float64, startYear, endYear int) Projection {
	var w Warning
	if len(t.entries) == 0 {
		w |= WarnNoData
	} else {
		if startYear < t.entries[0].Year {
			w |= WarnStartOutOfRange
		}
		if endYear-1 > t.entries[len(t.entries)-1].Year {
			w |= WarnEndOutOfRange
		}
	}
	if startYear >= endYear {
		w |= WarnStartNotBeforeEnd
	}

	if t.logger != nil {
		for _, msg := range w.Messages() {
			t.logger.Printf("Warning: %s (%s, %d-%d)", msg, t.label, startYear, endYear)
		}
	}

	value := principal
	for _, e := range t.entries {
		if e.Year >= startYear && e.Year < endYear {
			value *= 1 - e.Rate
		}
	}
	return Projection{Value: value, Warnings: w}
}

// Describe yields every (year, rate) pair in insertion order. Modifying the
// tracker while ranging over the sequence is not supported.
func (t *RateTracker) Describe() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for _, e := range t.entries {
			if !yield(e.Year, e.Rate) {
				return
			}
		}
	}
}

// Entries returns a copy of the series in insertion order.
func (t *RateTracker) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
