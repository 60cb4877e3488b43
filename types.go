package main

// InputRow is one validated line of the input CSV.
type InputRow struct {
	Service      string
	City         string
	Neighborhood string
	PriceFrom    string
}

// PageStatus is the WordPress publication status of a page.
type PageStatus string

const (
	StatusDraft   PageStatus = "draft"
	StatusPublish PageStatus = "publish"
)

// PageMeta carries the custom fields attached to a created page.
type PageMeta struct {
	ServiceArea      string `json:"service_area"`
	ServiceType      string `json:"service_type"`
	PriceFrom        string `json:"price_from"`
	FeaturedImageURL string `json:"featured_image_url"`
}

// ComposedPage is the fully rendered page ready to be sent to WordPress.
type ComposedPage struct {
	Title  string
	Slug   string
	Body   string
	Status PageStatus
	Meta   PageMeta
}

// PageRef identifies a page that exists on the remote site.
type PageRef struct {
	ID   int
	Slug string
	URL  string
}

// Outcome is the terminal state of processing one input row.
type Outcome string

const (
	OutcomeCreated          Outcome = "created"
	OutcomeSkippedDuplicate Outcome = "skipped_duplicate"
	OutcomeFailed           Outcome = "failed"
)

// LogRecord tracks the outcome of processing one input row. Exactly one
// record is produced per processed row, whatever the outcome.
type LogRecord struct {
	Title   string
	Slug    string
	Status  string
	URL     string
	WPID    int
	Outcome Outcome
	Notes   string
}
