package stats

// Dataset is a run of consecutive yearly rates for one country.
// Rates are fractions: 0.028 means 2.8%.
type Dataset struct {
	Country   string
	StartYear int
	Rates     []float64
}

// EndYear is the first year after the data set.
func (d *Dataset) EndYear() int {
	return d.StartYear + len(d.Rates)
}

func (d *Dataset) Years() int {
	return len(d.Rates)
}

// Fill inserts every rate of the data set into t, oldest year first.
func (d *Dataset) Fill(t *RateTracker) {
	for i, r := range d.Rates {
		t.Insert(d.StartYear+i, r)
	}
}

// Yearly consumer price inflation 1993 - 2022.
var (
	CzechRepublic = Dataset{
		Country:   "Czech Republic",
		StartYear: 1993,
		Rates: []float64{
			0.28, 0.1, 0.091, 0.088, 0.085, 0.107, 0.021, 0.039, 0.047, 0.018,
			0.001, 0.028, 0.019, 0.025, 0.028, 0.063, 0.01, 0.015, 0.019, 0.033,
			0.014, 0.004, 0.003, 0.007, 0.025, 0.021, 0.028, 0.032, 0.038, 0.151,
		},
	}

	SlovakRepublic = Dataset{
		Country:   "Slovak Republic",
		StartYear: 1993,
		Rates: []float64{
			0.232, 0.134, 0.099, 0.058, 0.061, 0.067, 0.106, 0.12, 0.073, 0.033,
			0.085, 0.075, 0.027, 0.045, 0.028, 0.046, 0.016, 0.01, 0.039, 0.036,
			0.014, -0.001, -0.003, -0.005, 0.013, 0.025, 0.027, 0.019, 0.032, 0.128,
		},
	}
)

// BuiltinDatasets returns copies of the bundled data sets.
func BuiltinDatasets() []*Dataset {
	var out []*Dataset
	for _, d := range []Dataset{CzechRepublic, SlovakRepublic} {
		d.Rates = append([]float64(nil), d.Rates...)
		out = append(out, &d)
	}
	return out
}
