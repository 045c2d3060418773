package services

import (
	"context"
	"sync"
	"time"

	"github.com/emon51/property-scraper/models"
)

type fakeOutcome struct {
	record *models.PropertyRecord
	err    error
}

// fakeScraper returns canned outcomes and records call order and peak
// concurrency.
type fakeScraper struct {
	outcomes map[string]fakeOutcome
	delay    time.Duration

	mu      sync.Mutex
	calls   []string
	running int
	peak    int
}

func (f *fakeScraper) Scrape(ctx context.Context, url string) (*models.PropertyRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.running++
	if f.running > f.peak {
		f.peak = f.running
	}
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.running--
	f.mu.Unlock()

	out, ok := f.outcomes[url]
	if !ok {
		record := models.MissingRecord(true)
		return &record, nil
	}
	return out.record, out.err
}

func listingRecord() *models.PropertyRecord {
	return &models.PropertyRecord{
		Name:      "Little Country Houses - Poppy's Pad with hot tub",
		Category:  "Entire cabin in Norfolk, United Kingdom",
		Bedrooms:  models.CountOf(1),
		Bathrooms: models.CountOf(1),
		Amenities: &models.AmenitySet{
			Available:   []string{"Hot tub", "Kitchen", "Wifi"},
			Unavailable: []string{"Unavailable: Smoke alarm"},
		},
	}
}
