package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ScannerTSVReader reads tab-separated exports produced by fingerprint
// terminal vendor tools. Those files commonly ship as UTF-16 with a BOM;
// plain UTF-8 files pass through the BOM override untouched.
type ScannerTSVReader struct{}

func (r *ScannerTSVReader) Read(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scanner export %s: %w", path, err)
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	utf8Reader := transform.NewReader(file, decoder)

	csvReader := csv.NewReader(utf8Reader)
	csvReader.Comma = '\t'
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	grid := make([][]string, 0, 128)
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read scanner row %d: %w", len(grid)+1, err)
		}
		grid = append(grid, row)
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("scanner export is empty: %s", path)
	}

	return grid, nil
}
