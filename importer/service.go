package importer

import "fmt"

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsSkipped    int
	BlocksParsed   int
	BlocksSkipped  int
	FactsParsed    int
	Blocks         []EmployeeBlock
	Warnings       []string
}

// Run reads every input file with the format-appropriate reader, decodes it
// through the selected layout and merges the per-employee blocks. Blocks
// with the same employee code across files are combined; a malformed block
// in one file never aborts the rest of the run.
func Run(paths []string, format string, layout Layout) (*Result, error) {
	result := &Result{}
	merged := make(map[string]int)

	for _, path := range paths {
		sourceFormat, err := InferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		grid, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		parsed, err := layout.Parse(grid)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		result.FilesProcessed++
		result.RowsRead += parsed.RowsRead
		result.RowsSkipped += parsed.RowsSkipped
		result.BlocksSkipped += parsed.BlocksSkipped
		result.Warnings = append(result.Warnings, parsed.Warnings...)

		for _, block := range parsed.Blocks {
			index, seen := merged[block.Code]
			if !seen {
				merged[block.Code] = len(result.Blocks)
				result.Blocks = append(result.Blocks, block)
				continue
			}

			existing := &result.Blocks[index]
			existing.Facts = append(existing.Facts, block.Facts...)
			if existing.Name == "" {
				existing.Name = block.Name
			}
			if existing.DailyWage == 0 {
				existing.DailyWage = block.DailyWage
			}
		}
	}

	result.BlocksParsed = len(result.Blocks)
	for _, block := range result.Blocks {
		result.FactsParsed += len(block.Facts)
	}

	return result, nil
}
