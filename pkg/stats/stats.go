// Package stats tracks yearly inflation rates for a country and projects
// how a sum of money loses purchasing power over a range of years.
package stats

// Entry is a single year of a rate series.
type Entry struct {
	Year int
	Rate float64
}
