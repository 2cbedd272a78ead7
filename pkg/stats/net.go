package stats

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Pause before each request, statistics offices do not like being hammered.
var downloadDelay = 250 * time.Millisecond

func download(url string) ([]byte, error) {
	fmt.Printf("Download: '%s'\n", url)

	time.Sleep(downloadDelay)

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download '%s': %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
