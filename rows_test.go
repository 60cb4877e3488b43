package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp CSV: %v", err)
	}
	return path
}

func TestLoadRows(t *testing.T) {
	path := writeTempCSV(t, "service,city,neighborhood,price_from\n"+
		"HVAC Repair,Austin,Riverside,$99\n"+
		"Plumbing,Dallas,Oak Cliff,$79\n")

	rows, err := LoadRows(path)
	if err != nil {
		t.Fatalf("LoadRows() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("LoadRows() returned %d rows, want 2", len(rows))
	}

	if rows[0]["service"] != "HVAC Repair" {
		t.Errorf("rows[0][service] = %q, want %q", rows[0]["service"], "HVAC Repair")
	}
	if rows[1]["neighborhood"] != "Oak Cliff" {
		t.Errorf("rows[1][neighborhood] = %q, want %q", rows[1]["neighborhood"], "Oak Cliff")
	}
}

func TestLoadRowsHeaderOrderIndependent(t *testing.T) {
	path := writeTempCSV(t, "price_from,neighborhood, city ,service,extra\n"+
		"$49,Capitol Hill,Seattle,Cleaning,ignored\n")

	rows, err := LoadRows(path)
	if err != nil {
		t.Fatalf("LoadRows() error = %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("LoadRows() returned %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row["service"] != "Cleaning" || row["city"] != "Seattle" ||
		row["neighborhood"] != "Capitol Hill" || row["price_from"] != "$49" {
		t.Errorf("unexpected row mapping: %v", row)
	}
}

func TestLoadRowsMissingColumns(t *testing.T) {
	path := writeTempCSV(t, "service,city,price_from\nHVAC Repair,Austin,$99\n")

	_, err := LoadRows(path)
	if err == nil {
		t.Fatal("LoadRows() expected error for missing column")
	}
	if !strings.Contains(err.Error(), "neighborhood") {
		t.Errorf("error should name the missing column, got: %v", err)
	}
}

func TestLoadRowsEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := LoadRows(path)
	if err == nil {
		t.Fatal("LoadRows() expected error for empty file")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("error should mention empty file, got: %v", err)
	}
}

func TestLoadRowsMissingFile(t *testing.T) {
	_, err := LoadRows(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	if err == nil {
		t.Fatal("LoadRows() expected error for missing file")
	}
}

func TestLoadRowsShortRecord(t *testing.T) {
	// Row has fewer cells than the header; the missing cell validates as
	// empty later instead of breaking the load.
	path := writeTempCSV(t, "service,city,neighborhood,price_from\nHVAC Repair,Austin\n")

	rows, err := LoadRows(path)
	if err != nil {
		t.Fatalf("LoadRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("LoadRows() returned %d rows, want 1", len(rows))
	}
	if rows[0]["price_from"] != "" {
		t.Errorf("missing cell should map to empty string, got %q", rows[0]["price_from"])
	}
}

func TestValidateRow(t *testing.T) {
	tests := []struct {
		name        string
		raw         RawRow
		want        InputRow
		wantMissing []string
	}{
		{
			name: "valid row",
			raw:  RawRow{"service": "HVAC Repair", "city": "Austin", "neighborhood": "Riverside", "price_from": "$99"},
			want: InputRow{Service: "HVAC Repair", City: "Austin", Neighborhood: "Riverside", PriceFrom: "$99"},
		},
		{
			name: "values trimmed",
			raw:  RawRow{"service": "  Plumbing ", "city": " Dallas", "neighborhood": "Oak Cliff ", "price_from": " $79 "},
			want: InputRow{Service: "Plumbing", City: "Dallas", Neighborhood: "Oak Cliff", PriceFrom: "$79"},
		},
		{
			name:        "empty city",
			raw:         RawRow{"service": "HVAC Repair", "city": "", "neighborhood": "Riverside", "price_from": "$99"},
			wantMissing: []string{"city"},
		},
		{
			name:        "whitespace-only field",
			raw:         RawRow{"service": "HVAC Repair", "city": "   ", "neighborhood": "Riverside", "price_from": "$99"},
			wantMissing: []string{"city"},
		},
		{
			name:        "multiple missing fields",
			raw:         RawRow{"service": "", "city": "Austin", "neighborhood": "", "price_from": "$99"},
			wantMissing: []string{"service", "neighborhood"},
		},
		{
			name:        "empty row",
			raw:         RawRow{},
			wantMissing: []string{"service", "city", "neighborhood", "price_from"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRow(tt.raw)

			if len(tt.wantMissing) > 0 {
				if err == nil {
					t.Fatal("ValidateRow() expected error, got nil")
				}
				verr, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("ValidateRow() error type = %T, want *ValidationError", err)
				}
				if len(verr.Fields) != len(tt.wantMissing) {
					t.Fatalf("ValidationError.Fields = %v, want %v", verr.Fields, tt.wantMissing)
				}
				for i, field := range tt.wantMissing {
					if verr.Fields[i] != field {
						t.Errorf("ValidationError.Fields[%d] = %q, want %q", i, verr.Fields[i], field)
					}
					if !strings.Contains(err.Error(), field) {
						t.Errorf("error message should name %q, got: %v", field, err)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("ValidateRow() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
