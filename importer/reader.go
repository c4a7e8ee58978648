package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader turns one uploaded file into a 2-D grid of cell strings. Layouts
// work on grids rather than header-keyed records because the header-block
// shape carries employee metadata in fixed positions, not in columns.
type Reader interface {
	Read(path string) ([][]string, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	case "tsv", "scanner":
		return &ScannerTSVReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

func InferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	case "tsv", "dat":
		return "tsv", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}
