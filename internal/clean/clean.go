// Package clean prepares raw penguin CSV files for analysis: it reports
// missing values and rewrites the raw survey headers into the snake_case
// schema the rest of the tool expects, dropping incomplete rows.
package clean

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// columnMapping maps raw survey headers to cleaned snake_case names.
// Order matters: it is the output column order.
var columnMapping = []struct {
	Raw   string
	Clean string
}{
	{"Species", "species"},
	{"Island", "island"},
	{"Culmen Length (mm)", "culmen_length_mm"},
	{"Culmen Depth (mm)", "culmen_depth_mm"},
	{"Flipper Length (mm)", "flipper_length_mm"},
	{"Body Mass (g)", "body_mass_g"},
	{"Sex", "sex"},
}

// missingTokens are the cell values treated as absent data.
var missingTokens = map[string]bool{
	"": true, "na": true, "n/a": true, "nan": true, "null": true, ".": true,
}

// MissingReport counts absent values per column of a CSV file.
type MissingReport struct {
	TotalRows int
	Columns   []string
	Missing   map[string]int
}

// AnalyzeMissing scans a CSV file and tallies missing cells per column.
func AnalyzeMissing(path string) (*MissingReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &MissingReport{Missing: map[string]int{}}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	rep := &MissingReport{Columns: header, Missing: make(map[string]int, len(header))}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", rep.TotalRows+1, err)
		}
		rep.TotalRows++
		for i, col := range header {
			val := ""
			if i < len(rec) {
				val = strings.TrimSpace(rec[i])
			}
			if isMissing(val) {
				rep.Missing[col]++
			}
		}
	}
	return rep, nil
}

// Preprocess reads a raw penguins CSV and writes the cleaned variant:
// headers renamed to snake_case, rows with any missing required field
// dropped, species trimmed of its parenthesised latin name, and sex
// lowercased. Input already using snake_case headers passes through the
// same validation. Returns the number of rows kept.
func Preprocess(inputPath, outputPath string) (int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	// Index the input columns by the name we expect to read them under.
	// If the file already carries clean headers, map identity.
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.TrimSpace(h)] = i
	}
	alreadyClean := true
	for _, m := range columnMapping {
		if _, ok := colIdx[m.Clean]; !ok {
			alreadyClean = false
			break
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	w := csv.NewWriter(out)

	cleanHeader := make([]string, len(columnMapping))
	for i, m := range columnMapping {
		cleanHeader[i] = m.Clean
	}
	if err := w.Write(cleanHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	kept := 0
	row := make([]string, len(columnMapping))
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return kept, fmt.Errorf("read row: %w", err)
		}

		complete := true
		for i, m := range columnMapping {
			source := m.Raw
			if alreadyClean {
				source = m.Clean
			}
			idx, ok := colIdx[source]
			val := ""
			if ok && idx < len(rec) {
				val = strings.TrimSpace(rec[idx])
			}
			if isMissing(val) {
				complete = false
				break
			}
			switch m.Clean {
			case "species":
				// "Adelie Penguin (Pygoscelis adeliae)" → "Adelie"
				if strings.Contains(val, "(") {
					val = strings.Fields(val)[0]
				}
			case "sex":
				val = strings.ToLower(val)
			}
			row[i] = val
		}
		if !complete {
			continue
		}
		if err := w.Write(row); err != nil {
			return kept, fmt.Errorf("write row: %w", err)
		}
		kept++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return kept, fmt.Errorf("flush output: %w", err)
	}
	return kept, nil
}

func isMissing(val string) bool {
	return missingTokens[strings.ToLower(val)]
}
