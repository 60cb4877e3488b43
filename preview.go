package main

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// ContentPreviewer renders page bodies as plain markdown for dry-run console
// output.
type ContentPreviewer struct {
	converter *md.Converter
}

// NewContentPreviewer creates a previewer with default conversion rules.
func NewContentPreviewer() *ContentPreviewer {
	return &ContentPreviewer{converter: md.NewConverter("", true, nil)}
}

// Preview converts the HTML body to markdown and returns the first maxLines
// non-empty lines.
func (p *ContentPreviewer) Preview(body string, maxLines int) (string, error) {
	markdown, err := p.converter.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting body to markdown: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(markdown, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= maxLines {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}
