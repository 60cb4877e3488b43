package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// requiredColumns are checked in this order so validation errors always name
// fields the same way.
var requiredColumns = []string{"service", "city", "neighborhood", "price_from"}

// RawRow is one unvalidated CSV line keyed by header name.
type RawRow map[string]string

// ValidationError reports required fields that are missing or empty in a row.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or empty field(s): %s", strings.Join(e.Fields, ", "))
}

// LoadRows reads the input CSV and returns one RawRow per data line. The
// header must contain all required columns, in any order; a missing column is
// a setup error that aborts the run before any row is processed.
func LoadRows(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns in CSV file: %s", strings.Join(missing, ", "))
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", len(rows)+2, err)
		}

		row := make(RawRow, len(requiredColumns))
		for col, i := range index {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ValidateRow checks that all required fields are present and non-empty and
// returns the trimmed row. The returned error is a *ValidationError naming
// every missing field.
func ValidateRow(raw RawRow) (InputRow, error) {
	var missing []string
	for _, col := range requiredColumns {
		if strings.TrimSpace(raw[col]) == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return InputRow{}, &ValidationError{Fields: missing}
	}

	return InputRow{
		Service:      strings.TrimSpace(raw["service"]),
		City:         strings.TrimSpace(raw["city"]),
		Neighborhood: strings.TrimSpace(raw["neighborhood"]),
		PriceFrom:    strings.TrimSpace(raw["price_from"]),
	}, nil
}
