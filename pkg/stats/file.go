package stats

import (
	"encoding/base64"
	"os"
)

// File represents a file containing statistical data.
// This is typically a table of yearly rates in Excel format.
type File struct {
	URL           string
	Title         string
	ContentBase64 string
}

func (f *File) DownloadContent() error {
	data, err := download(f.URL)
	if err != nil {
		return err
	}
	f.ContentBase64 = base64.StdEncoding.EncodeToString(data)
	return nil
}

// ReadContent loads the file from the local path it was created with.
func (f *File) ReadContent() error {
	data, err := os.ReadFile(f.URL)
	if err != nil {
		return err
	}
	f.ContentBase64 = base64.StdEncoding.EncodeToString(data)
	return nil
}

func (f *File) content() ([]byte, error) {
	return base64.StdEncoding.DecodeString(f.ContentBase64)
}
