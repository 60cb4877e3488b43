// dedupe reports input rows that would collide on the same page slug, so
// sheets can be cleaned up before a pagegen run. At run time only the first
// row of each group would be created; the rest would be skipped as
// duplicates.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: dedupe <csv-file>")
	}

	groups, order, err := scanFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	duplicateGroups := 0
	for _, slug := range order {
		rows := groups[slug]
		if len(rows) <= 1 {
			continue
		}
		duplicateGroups++

		fmt.Printf("\nSlug %q shared by %d rows:\n", slug, len(rows))
		for i, row := range rows {
			if i == 0 {
				fmt.Printf("  KEEP: row %d (%s)\n", row.line, row.title)
				continue
			}
			fmt.Printf("  DUPLICATE: row %d (%s)\n", row.line, row.title)
		}
	}

	fmt.Printf("\nFound %d duplicate slug group(s)\n", duplicateGroups)
	if duplicateGroups > 0 {
		os.Exit(1)
	}
}

type rowRef struct {
	line  int
	title string
}

// scanFile groups data rows by composed slug, preserving first-seen order.
func scanFile(path string) (map[string][]rowRef, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, col := range []string{"service", "city", "neighborhood"} {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", col)
		}
	}

	groups := make(map[string][]rowRef)
	var order []string

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading CSV row: %w", err)
		}
		line++

		service := field(record, index["service"])
		city := field(record, index["city"])
		neighborhood := field(record, index["neighborhood"])
		if service == "" || city == "" || neighborhood == "" {
			// pagegen would reject these rows before the slug matters
			continue
		}

		slug := slugify(fmt.Sprintf("%s in %s %s", service, neighborhood, city))
		if _, seen := groups[slug]; !seen {
			order = append(order, slug)
		}
		title := fmt.Sprintf("%s in %s, %s", service, neighborhood, city)
		groups[slug] = append(groups[slug], rowRef{line: line, title: title})
	}

	return groups, order, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func slugify(s string) string {
	slug := strings.ToLower(s)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
