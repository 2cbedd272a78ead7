package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
)

// Database is the on-disk collection of rate data sets and the
// spreadsheets they were imported from.
type Database struct {
	Datasets []*Dataset
	Sources  []*File
	Updated  time.Time
}

func NewDatabase() *Database {
	return &Database{}
}

// LoadIfExists reads the database at dbFile. found is false when the
// file does not exist.
func LoadIfExists(dbFile string) (db *Database, found bool, err error) {
	data, err := os.ReadFile(dbFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	db = new(Database)
	if err := json.Unmarshal(data, db); err != nil {
		return nil, false, fmt.Errorf("could not parse database '%s': %w", dbFile, err)
	}

	return db, true, nil
}

func (db *Database) Save(dbFile string) error {
	js, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(dbFile, js, 0644)
}

// Put adds d, replacing any data set for the same country.
func (db *Database) Put(d *Dataset) {
	for i, e := range db.Datasets {
		if e.Country == d.Country {
			db.Datasets[i] = d
			return
		}
	}
	db.Datasets = append(db.Datasets, d)
}

func (db *Database) Find(country string) (d *Dataset, found bool) {
	for _, d := range db.Datasets {
		if d.Country == country {
			return d, true
		}
	}
	return nil, false
}

func (db *Database) Info(w io.Writer) {
	firstYear := 0
	lastYear := 0
	contentSize := 0

	for _, d := range db.Datasets {
		if d.Years() == 0 {
			continue
		}
		if firstYear == 0 || firstYear > d.StartYear {
			firstYear = d.StartYear
		}
		if lastYear == 0 || lastYear < d.EndYear()-1 {
			lastYear = d.EndYear() - 1
		}
	}
	for _, f := range db.Sources {
		contentSize += len(f.ContentBase64)
	}

	fmt.Fprintf(w, `
	Years        : %d - %d
	Datasets     : %d
	Sources      : %d
	Content Size : %d
	`, firstYear, lastYear, len(db.Datasets), len(db.Sources), contentSize)
	fmt.Fprintln(w, "")
}
