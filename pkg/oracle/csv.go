package oracle

import (
	"encoding/csv"
	"strings"
)

// CSVRecords returns every data line of a CSV oracle payload. Lines with fewer
// than minFields fields are prose and skipped, as is a header line whose
// fields equal header (case-insensitive). Quoted fields may contain commas.
func CSVRecords(raw string, minFields int, header ...string) ([][]string, error) {
	body := StripFences(raw)

	var records [][]string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r := csv.NewReader(strings.NewReader(line))
		r.LazyQuotes = true
		r.TrimLeadingSpace = true
		r.FieldsPerRecord = -1
		rec, err := r.Read()
		if err != nil || len(rec) < minFields {
			continue
		}
		if isHeader(rec, header) {
			continue
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, newParseError("no CSV data line found", raw, nil)
	}
	return records, nil
}

// FirstCSVRecord is CSVRecords limited to the first data line.
func FirstCSVRecord(raw string, minFields int, header ...string) ([]string, error) {
	records, err := CSVRecords(raw, minFields, header...)
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

func isHeader(rec, header []string) bool {
	if len(header) == 0 || len(rec) < len(header) {
		return false
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(rec[i]), h) {
			return false
		}
	}
	return true
}
