package stats

import (
	"io"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Outcome is the value left for a country after a projection.
type Outcome struct {
	Country string
	Value   float64
}

// Report prints tracker results for humans.
type Report struct {
	w io.Writer
	p *message.Printer
}

func NewReport(w io.Writer) *Report {
	return &Report{w: w, p: message.NewPrinter(language.English)}
}

func (r *Report) PrintData(t *RateTracker) {
	if t.Len() == 0 {
		r.p.Fprintf(r.w, "Warning: Found no data to print!\n\n")
		return
	}

	r.p.Fprintf(r.w, "Data for %s are:\n", t.Label())
	for year, rate := range t.Describe() {
		// Years are printed without grouping.
		r.p.Fprintf(r.w, "%s | %.2f%%\n", yearString(year), rate*100)
	}
}

func (r *Report) PrintExtremes(t *RateTracker) {
	max := t.Max()
	r.p.Fprintf(r.w, "Maximum was %s: %.2f%%\n", yearString(max.Year), max.Rate*100)

	min := t.Min()
	r.p.Fprintf(r.w, "Minimum was %s: %.2f%%\n", yearString(min.Year), min.Rate*100)
}

// PrintProjection prints the warnings of p followed by the projected value.
func (r *Report) PrintProjection(principal float64, startYear, endYear int, p Projection) {
	for _, msg := range p.Warnings.Messages() {
		r.p.Fprintf(r.w, "Warning: %s\n\n", msg)
	}
	r.p.Fprintf(r.w, "Saving %.f for %d years in %s with no interest rate would mean having %.2f in %s\n\n",
		principal, endYear-startYear, yearString(startYear), p.Value, yearString(endYear))
}

// PrintVerdict prints which country had the higher inflation. The country
// left with less money had the higher inflation.
func (r *Report) PrintVerdict(a, b Outcome) {
	switch {
	case a.Value > b.Value:
		r.p.Fprintf(r.w, "%s had a higher inflation rate than %s!\n", b.Country, a.Country)
	case a.Value < b.Value:
		r.p.Fprintf(r.w, "%s had a higher inflation rate than %s!\n", a.Country, b.Country)
	default:
		r.p.Fprintf(r.w, "%s and %s had the same inflation rate!\n", a.Country, b.Country)
	}
}

// Compare returns the country with the higher inflation, or "" if both
// ended with the same value.
func Compare(a, b Outcome) string {
	switch {
	case a.Value > b.Value:
		return b.Country
	case a.Value < b.Value:
		return a.Country
	}
	return ""
}

// Round2 rounds to two decimals, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func yearString(y int) string {
	return strconv.Itoa(y)
}
