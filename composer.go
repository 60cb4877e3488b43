package main

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Composer renders a ComposedPage from a validated input row using a fixed
// page template. Composition is deterministic: the same row always yields the
// same title, slug and body.
type Composer struct {
	imageURL string
	tmpl     *template.Template
}

// pageData is the data passed to the page template.
type pageData struct {
	Service      string
	City         string
	Neighborhood string
	PriceFrom    string
	ImageURL     string
	Intro        string
	Expertise    string
	Coverage     string
	CTA          string
}

// NewComposer creates a composer using the embedded page template, or the
// file at templatePath when it is non-empty.
func NewComposer(imageURL, templatePath string) (*Composer, error) {
	templateData := defaultTemplate
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("reading template file: %w", err)
		}
		templateData = string(data)
	}

	tmpl, err := template.New("page").Parse(templateData)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Composer{imageURL: imageURL, tmpl: tmpl}, nil
}

// MakeTitle builds the page title for a row.
func MakeTitle(row InputRow) string {
	return fmt.Sprintf("%s in %s, %s", row.Service, row.Neighborhood, row.City)
}

// MakeSlug builds the URL slug for a row. The slug depends only on service,
// neighborhood and city, so it doubles as the de-duplication key.
func MakeSlug(row InputRow) string {
	return slugify(fmt.Sprintf("%s in %s %s", row.Service, row.Neighborhood, row.City))
}

// slugify lowercases, collapses non-alphanumeric runs to single hyphens and
// trims leading/trailing hyphens.
func slugify(s string) string {
	slug := strings.ToLower(s)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Compose renders the full page for a row. Status is publish when the global
// publish flag is set, draft otherwise.
func (c *Composer) Compose(row InputRow, publish bool) (ComposedPage, error) {
	data := pageData{
		Service:      row.Service,
		City:         row.City,
		Neighborhood: row.Neighborhood,
		PriceFrom:    row.PriceFrom,
		ImageURL:     c.imageURL,
		Intro:        introText(row),
		Expertise:    expertiseText(row),
		Coverage:     coverageText(row),
		CTA:          ctaText(row),
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return ComposedPage{}, fmt.Errorf("executing page template: %w", err)
	}

	status := StatusDraft
	if publish {
		status = StatusPublish
	}

	return ComposedPage{
		Title:  MakeTitle(row),
		Slug:   MakeSlug(row),
		Body:   strings.TrimSpace(buf.String()),
		Status: status,
		Meta: PageMeta{
			ServiceArea:      fmt.Sprintf("%s, %s", row.Neighborhood, row.City),
			ServiceType:      row.Service,
			PriceFrom:        row.PriceFrom,
			FeaturedImageURL: c.imageURL,
		},
	}, nil
}

// Section texts are fixed copy with the row values substituted in.

func introText(row InputRow) string {
	return fmt.Sprintf("Professional %s services in %s, %s starting from %s. Our experienced team provides fast and reliable solutions for all your needs.",
		row.Service, row.Neighborhood, row.City, row.PriceFrom)
}

func expertiseText(row InputRow) string {
	return fmt.Sprintf("With years of experience serving %s residents, our %s experts are your trusted choice in %s. We combine local expertise with professional excellence to deliver outstanding results every time.",
		row.City, row.Service, row.Neighborhood)
}

func coverageText(row InputRow) string {
	return fmt.Sprintf("Our service area includes all of %s and surrounding %s neighborhoods. We're strategically located to provide quick response times throughout the entire service area.",
		row.Neighborhood, row.City)
}

func ctaText(row InputRow) string {
	return fmt.Sprintf("Ready to schedule your %s service? Contact us now to get started with our professional team in %s. Call today for a free consultation!",
		row.Service, row.Neighborhood)
}
