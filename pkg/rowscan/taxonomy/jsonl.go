package taxonomy

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
)

// WriteSlimJSONL writes one {"code","name","path"} object per line and
// returns the number of records written.
func WriteSlimJSONL(path string, entries []models.TaxonomyEntry) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, e := range entries {
		if err := enc.Encode(e.Slim()); err != nil {
			f.Close()
			return 0, fmt.Errorf("failed to encode %s: %w", e.Code, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// PreviewLines returns up to n lines from the start of a text file.
func PreviewLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for len(lines) < n && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
