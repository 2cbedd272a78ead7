package stats

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

func ExtractDataFromFile(f *File, handler func(r []string)) error {
	if strings.HasSuffix(f.URL, ".xlsx") {
		return ExtractDataFromXLSX(f, handler)
	}
	return ExtractDataFromXLS(f, handler)
}

func ExtractDataFromXLS(f *File, handler func(r []string)) error {
	fmt.Printf("Loading XLS data: %s\n", f.URL)

	rawData, err := f.content()
	if err != nil {
		return err
	}
	wb, err := xls.OpenReader(bytes.NewReader(rawData), "utf-8")
	if err != nil {
		return fmt.Errorf("could not read XLS file '%s' (%s): %w", f.Title, f.URL, err)
	}

	if sheet := wb.GetSheet(0); sheet != nil {
		fmt.Printf("Sheet name : %s\n", sheet.Name)
		fmt.Printf("Sheet rows : %d\n", sheet.MaxRow)

		for i := 0; i <= int(sheet.MaxRow); i++ {
			row := sheet.Row(i)
			if row != nil {
				var cols []string
				for j := 0; j <= row.LastCol(); j++ {
					cols = append(cols, row.Col(j))
				}
				handler(cols)
			}
		}
	}
	return nil
}

func ExtractDataFromXLSX(f *File, handler func(r []string)) error {
	fmt.Printf("Loading XLSX data: %s\n", f.URL)

	rawData, err := f.content()
	if err != nil {
		return err
	}
	wb, err := xlsx.OpenReader(bytes.NewReader(rawData))
	if err != nil {
		return fmt.Errorf("could not read XLSX file '%s' (%s): %w", f.Title, f.URL, err)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("XLSX file '%s' has no sheets", f.URL)
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("could not get rows for default sheet '%s': %w", defaultSheet, err)
	}

	fmt.Printf("Sheet name : %s\n", defaultSheet)
	fmt.Printf("Sheet rows : %d\n", len(rows))

	for _, r := range rows {
		handler(r)
	}
	return nil
}

// ExtractDatasets reads yearly rates for the given countries from f.
//
// The first sheet holds a header row starting with "Year" followed by
// country names, then one row per year with rates in percent, e.g.
//
//	Year | Czech Republic | Slovak Republic
//	1993 | 28.0%          | 23.2
//
// Rows before the header and rows without a numeric year are ignored.
// Years must be consecutive.
func ExtractDatasets(f *File, countries ...string) ([]*Dataset, error) {
	mustTrim := func(v string) string {
		return strings.Trim(v, " \n\t\r")
	}

	var (
		columns  map[string]int
		datasets = make(map[string]*Dataset)
		rowErr   error
	)

	err := ExtractDataFromFile(f, func(row []string) {
		if rowErr != nil || len(row) == 0 {
			return
		}

		first := mustTrim(row[0])
		if columns == nil {
			if !strings.EqualFold(first, "Year") {
				return
			}
			columns = make(map[string]int)
			for i, c := range row[1:] {
				columns[mustTrim(c)] = i + 1
			}
			return
		}

		year, err := strconv.Atoi(first)
		if err != nil {
			return
		}

		for _, country := range countries {
			col, ok := columns[country]
			if !ok || col >= len(row) || mustTrim(row[col]) == "" {
				continue
			}
			pct, err := strconv.ParseFloat(strings.TrimSuffix(mustTrim(row[col]), "%"), 64)
			if err != nil {
				rowErr = fmt.Errorf("%s %d: could not parse rate '%s'", country, year, row[col])
				return
			}

			d, ok := datasets[country]
			if !ok {
				d = &Dataset{Country: country, StartYear: year}
				datasets[country] = d
			}
			if year != d.EndYear() {
				rowErr = fmt.Errorf("%s: expected year %d, found %d", country, d.EndYear(), year)
				return
			}
			d.Rates = append(d.Rates, pct/100)
		}
	})
	if err != nil {
		return nil, err
	}
	if rowErr != nil {
		return nil, rowErr
	}
	if columns == nil {
		return nil, fmt.Errorf("no 'Year' header row found in '%s'", f.URL)
	}

	var out []*Dataset
	for _, country := range countries {
		d, ok := datasets[country]
		if !ok {
			return nil, fmt.Errorf("no data for '%s' in '%s'", country, f.URL)
		}
		out = append(out, d)
	}
	return out, nil
}
