package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
)

// RemoteClient is the surface of the WordPress client the pipeline uses.
type RemoteClient interface {
	FindBySlug(slug string) (*PageRef, error)
	CreatePage(page ComposedPage) (*PageRef, error)
}

// GeneratorOptions controls a pipeline run.
type GeneratorOptions struct {
	// Publish creates pages as publish instead of draft.
	Publish bool
	// DryRun suppresses all create calls; rows are composed and previewed
	// only.
	DryRun bool
	// DryRunLookup additionally performs the read-only duplicate lookup
	// while in dry-run mode. Without it a dry run makes no remote calls at
	// all.
	DryRunLookup bool
	// Limit caps the number of rows processed; 0 means all rows.
	Limit int
}

// PageGenerator runs the per-row pipeline: validate, compose, duplicate
// check, create. A failure in one row never stops the following rows.
type PageGenerator struct {
	client    RemoteClient
	composer  *Composer
	previewer *ContentPreviewer
	opts      GeneratorOptions
}

// NewPageGenerator creates a generator for one run.
func NewPageGenerator(client RemoteClient, composer *Composer, opts GeneratorOptions) *PageGenerator {
	return &PageGenerator{
		client:    client,
		composer:  composer,
		previewer: NewContentPreviewer(),
		opts:      opts,
	}
}

// Run processes rows in input order up to the configured limit and returns
// exactly one LogRecord per processed row.
func (g *PageGenerator) Run(rows []RawRow) []LogRecord {
	if g.opts.Limit > 0 && g.opts.Limit < len(rows) {
		rows = rows[:g.opts.Limit]
	}
	total := len(rows)

	records := make([]LogRecord, 0, total)

	log.Printf("Processing %d rows...", total)

	for i, raw := range rows {
		log.Printf("[%d/%d] Processing row", i+1, total)
		record := g.processRow(raw)
		records = append(records, record)

		switch record.Outcome {
		case OutcomeCreated:
			log.Printf("✓ %s: %s (/%s)", record.Outcome, record.Title, record.Slug)
		case OutcomeSkippedDuplicate:
			log.Printf("- %s: /%s", record.Outcome, record.Slug)
		default:
			log.Printf("✗ %s: %s", record.Outcome, record.Notes)
		}
	}

	return records
}

// processRow takes one raw row through validation, composition and the
// remote calls, and converts every error into a failed record.
func (g *PageGenerator) processRow(raw RawRow) LogRecord {
	row, err := ValidateRow(raw)
	if err != nil {
		return LogRecord{
			Outcome: OutcomeFailed,
			Notes:   fmt.Sprintf("validation: %v", err),
		}
	}

	page, err := g.composer.Compose(row, g.opts.Publish)
	if err != nil {
		return LogRecord{
			Title:   MakeTitle(row),
			Slug:    MakeSlug(row),
			Outcome: OutcomeFailed,
			Notes:   fmt.Sprintf("compose: %v", err),
		}
	}

	if !g.opts.DryRun || g.opts.DryRunLookup {
		existing, err := g.client.FindBySlug(page.Slug)
		if err != nil {
			return LogRecord{
				Title:   page.Title,
				Slug:    page.Slug,
				Status:  string(page.Status),
				Outcome: OutcomeFailed,
				Notes:   fmt.Sprintf("duplicate check: %v", err),
			}
		}
		if existing != nil {
			return LogRecord{
				Title:   page.Title,
				Slug:    page.Slug,
				Status:  string(page.Status),
				URL:     existing.URL,
				WPID:    existing.ID,
				Outcome: OutcomeSkippedDuplicate,
				Notes:   fmt.Sprintf("page exists (wp_id %d)", existing.ID),
			}
		}
	}

	if g.opts.DryRun {
		g.printPreview(page)
		return LogRecord{
			Title:   page.Title,
			Slug:    page.Slug,
			Status:  string(page.Status),
			Outcome: OutcomeCreated,
			Notes:   "dry-run: page not created",
		}
	}

	ref, err := g.client.CreatePage(page)
	if err != nil {
		return LogRecord{
			Title:   page.Title,
			Slug:    page.Slug,
			Status:  string(page.Status),
			Outcome: OutcomeFailed,
			Notes:   err.Error(),
		}
	}

	record := LogRecord{
		Title:   page.Title,
		Slug:    page.Slug,
		Status:  string(page.Status),
		URL:     ref.URL,
		WPID:    ref.ID,
		Outcome: OutcomeCreated,
	}
	if ref.Slug != "" && ref.Slug != page.Slug {
		record.Slug = ref.Slug
		record.Notes = fmt.Sprintf("WP changed slug: %s -> %s", page.Slug, ref.Slug)
	}

	return record
}

// printPreview shows the page a dry run would have created.
func (g *PageGenerator) printPreview(page ComposedPage) {
	log.Printf("Dry-run preview")
	log.Printf("  Title: %s", page.Title)
	log.Printf("  Slug: /%s", page.Slug)
	preview, err := g.previewer.Preview(page.Body, 2)
	if err != nil {
		debugLog("preview failed: %v", err)
		return
	}
	log.Printf("  Content preview:\n%s", preview)
}

// logColumns is the fixed header of the output log.
var logColumns = []string{"title", "slug", "status", "url", "wp_id", "notes"}

// WriteLog writes the full ordered record sequence to path as CSV,
// overwriting any previous log content.
func WriteLog(path string, records []LogRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(logColumns); err != nil {
		return fmt.Errorf("writing log header: %w", err)
	}

	for _, r := range records {
		wpID := ""
		if r.WPID > 0 {
			wpID = strconv.Itoa(r.WPID)
		}
		notes := r.Notes
		if r.Outcome != OutcomeCreated && notes != "" {
			notes = fmt.Sprintf("%s: %s", r.Outcome, notes)
		}
		if err := w.Write([]string{r.Title, r.Slug, r.Status, r.URL, wpID, notes}); err != nil {
			return fmt.Errorf("writing log row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing log file: %w", err)
	}

	return nil
}
