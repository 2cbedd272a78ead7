package stats

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadIfExistsMissing(t *testing.T) {
	db, found, err := LoadIfExists(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if found || db != nil {
		t.Fatalf("Expected not found, got %v %v", db, found)
	}
}

func TestLoadIfExistsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadIfExists(path); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestDatabaseSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	db := NewDatabase()
	for _, d := range BuiltinDatasets() {
		db.Put(d)
	}
	db.Sources = append(db.Sources, &File{URL: "rates.xlsx", Title: "Rates", ContentBase64: "AAAA"})
	db.Updated = time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)

	if err := db.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, found, err := LoadIfExists(path)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("Expected database to be found")
	}
	if diff := cmp.Diff(db, loaded); diff != "" {
		t.Fatalf("Loaded database mismatch (-want +got):\n%s", diff)
	}
}

func TestDatabasePutFind(t *testing.T) {
	db := NewDatabase()
	db.Put(&Dataset{Country: "A", StartYear: 2000, Rates: []float64{0.1}})
	db.Put(&Dataset{Country: "B", StartYear: 2000, Rates: []float64{0.2}})
	db.Put(&Dataset{Country: "A", StartYear: 2001, Rates: []float64{0.3, 0.4}})

	if len(db.Datasets) != 2 {
		t.Fatalf("Expected 2 datasets, got %d", len(db.Datasets))
	}
	a, ok := db.Find("A")
	if !ok || a.StartYear != 2001 || a.EndYear() != 2003 {
		t.Fatalf("Find(A) = %+v, %v", a, ok)
	}
	if db.Datasets[0] != a {
		t.Fatal("Put changed the position of A")
	}
	if _, ok := db.Find("C"); ok {
		t.Fatal("Find(C) should fail")
	}
}

func TestDatabaseInfo(t *testing.T) {
	db := NewDatabase()
	for _, d := range BuiltinDatasets() {
		db.Put(d)
	}
	db.Sources = []*File{{ContentBase64: "AAAA"}}

	var buf bytes.Buffer
	db.Info(&buf)

	for _, want := range []string{"Years        : 1993 - 2022", "Datasets     : 2", "Sources      : 1", "Content Size : 4"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Info missing %q:\n%s", want, buf.String())
		}
	}
}

func TestBuiltinDatasetsAreCopies(t *testing.T) {
	ds := BuiltinDatasets()
	ds[0].Rates[0] = 1
	if CzechRepublic.Rates[0] != 0.28 {
		t.Fatal("BuiltinDatasets shares rates with package data")
	}
	if ds[0].Years() != 30 || ds[1].EndYear() != 2023 {
		t.Fatalf("Unexpected shape: %d years, end %d", ds[0].Years(), ds[1].EndYear())
	}
}

func TestFileDownloadContent(t *testing.T) {
	downloadDelay = 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rates.xlsx" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("spreadsheet"))
	}))
	defer srv.Close()

	f := &File{URL: srv.URL + "/rates.xlsx"}
	if err := f.DownloadContent(); err != nil {
		t.Fatal(err)
	}
	if f.ContentBase64 != base64.StdEncoding.EncodeToString([]byte("spreadsheet")) {
		t.Fatalf("Unexpected content %q", f.ContentBase64)
	}

	missing := &File{URL: srv.URL + "/missing.xlsx"}
	if err := missing.DownloadContent(); err == nil {
		t.Fatal("Expected error for 404")
	}
}

func TestFileReadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.xls")
	if err := os.WriteFile(path, []byte("local"), 0644); err != nil {
		t.Fatal(err)
	}

	f := &File{URL: path}
	if err := f.ReadContent(); err != nil {
		t.Fatal(err)
	}
	data, err := f.content()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "local" {
		t.Fatalf("content() = %q", data)
	}
}
