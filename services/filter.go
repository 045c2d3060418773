package services

import (
	"strings"

	"github.com/emon51/property-scraper/models"
)

type Filter struct{}

func NewFilter() *Filter {
	return &Filter{}
}

// NormalizeURLs trims the input, drops blanks and duplicates and keeps the
// original order. Malformed URLs are kept so they are reported by the
// scraper.
func (f *Filter) NormalizeURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	seen := make(map[string]bool)

	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		cleaned = append(cleaned, u)
	}

	return cleaned
}

// Records returns the records of successful results, in input order.
func (f *Filter) Records(results []models.ScrapeResult) []models.PropertyRecord {
	records := make([]models.PropertyRecord, 0, len(results))
	for _, r := range results {
		if r.Record != nil {
			records = append(records, *r.Record)
		}
	}
	return records
}
