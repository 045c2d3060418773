package scraper

import (
	"reflect"
	"testing"

	"github.com/emon51/property-scraper/models"
)

func TestExtractListing(t *testing.T) {
	record := NewExtractor(true).ExtractHTML(listingHTML)

	if record.Name != "Little Country Houses - Poppy's Pad with hot tub" {
		t.Errorf("Name = %q", record.Name)
	}
	if record.Category != "Entire cabin in Norfolk, United Kingdom" {
		t.Errorf("Category = %q", record.Category)
	}
	if n, ok := record.Bedrooms.Int(); !ok || n != 1 {
		t.Errorf("Bedrooms = %v", record.Bedrooms)
	}
	if n, ok := record.Bathrooms.Int(); !ok || n != 1 {
		t.Errorf("Bathrooms = %v", record.Bathrooms)
	}

	if record.Amenities == nil {
		t.Fatal("Amenities missing")
	}
	wantAvailable := []string{"Kitchen", "Wifi", "Hot tub"}
	wantUnavailable := []string{"Unavailable: Carbon monoxide alarm", "Unavailable: Smoke alarm"}
	if !reflect.DeepEqual(record.Amenities.Available, wantAvailable) {
		t.Errorf("Available = %v, want %v", record.Amenities.Available, wantAvailable)
	}
	if !reflect.DeepEqual(record.Amenities.Unavailable, wantUnavailable) {
		t.Errorf("Unavailable = %v, want %v", record.Amenities.Unavailable, wantUnavailable)
	}
}

func TestExtractNotFoundPage(t *testing.T) {
	record := NewExtractor(true).ExtractHTML(notFoundHTML)

	want := models.MissingRecord(true)
	if !reflect.DeepEqual(record, want) {
		t.Errorf("got %+v, want %+v", record, want)
	}
	if !record.IsMissing() {
		t.Error("not-found page should produce a fully missing record")
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	record := NewExtractor(false).ExtractHTML("")

	if !reflect.DeepEqual(record, models.MissingRecord(false)) {
		t.Errorf("got %+v", record)
	}
}

func TestExtractWithoutAmenities(t *testing.T) {
	record := NewExtractor(false).ExtractHTML(listingHTML)
	if record.Amenities != nil {
		t.Errorf("Amenities = %+v, want nil", record.Amenities)
	}
	if record.Name == models.MissingName {
		t.Error("name should still be extracted")
	}
}

func TestExtractCounts(t *testing.T) {
	tests := []struct {
		name      string
		items     string
		bedrooms  models.Count
		bathrooms models.Count
	}{
		{
			name:      "well formed",
			items:     `<li>4 guests</li><li>· 2 bedrooms</li><li>· 3 beds</li><li>· 2 baths</li>`,
			bedrooms:  models.CountOf(2),
			bathrooms: models.CountOf(2),
		},
		{
			name:      "fractional bath",
			items:     `<li>4 guests</li><li>· 2 bedrooms</li><li>· 3 beds</li><li>· 1.5 baths</li>`,
			bedrooms:  models.CountOf(2),
			bathrooms: models.MissingCount(models.MissingBathrooms),
		},
		{
			name:      "studio",
			items:     `<li>2 guests</li><li>· Studio</li><li>· 1 bed</li><li>· 1 bath</li>`,
			bedrooms:  models.MissingCount(models.MissingBedrooms),
			bathrooms: models.CountOf(1),
		},
		{
			name:      "word instead of number",
			items:     `<li>2 guests</li><li>Bedrooms: two</li>`,
			bedrooms:  models.MissingCount(models.MissingBedrooms),
			bathrooms: models.MissingCount(models.MissingBathrooms),
		},
		{
			name:      "short list",
			items:     `<li>2 guests</li>`,
			bedrooms:  models.MissingCount(models.MissingBedrooms),
			bathrooms: models.MissingCount(models.MissingBathrooms),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<html><body><div data-section-id="OVERVIEW_DEFAULT_V2"><ol>` + tt.items + `</ol></div></body></html>`
			record := NewExtractor(false).ExtractHTML(html)

			if record.Bedrooms != tt.bedrooms {
				t.Errorf("Bedrooms = %v, want %v", record.Bedrooms, tt.bedrooms)
			}
			if record.Bathrooms != tt.bathrooms {
				t.Errorf("Bathrooms = %v, want %v", record.Bathrooms, tt.bathrooms)
			}
		})
	}
}

func TestExtractNameOnlyWhitespace(t *testing.T) {
	record := NewExtractor(false).ExtractHTML(`<html><body><h1>   </h1><h2>Room in Leeds</h2></body></html>`)

	if record.Name != models.MissingName {
		t.Errorf("Name = %q", record.Name)
	}
	if record.Category != "Room in Leeds" {
		t.Errorf("Category = %q", record.Category)
	}
}

func TestAmenityPartition(t *testing.T) {
	record := NewExtractor(true).ExtractHTML(listingHTML)

	seen := make(map[string]int)
	for _, a := range record.Amenities.Available {
		seen[a]++
	}
	for _, a := range record.Amenities.Unavailable {
		seen[a]++
	}
	for item, n := range seen {
		if n != 1 {
			t.Errorf("%q classified %d times", item, n)
		}
	}
	if len(seen) != 5 {
		t.Errorf("classified %d items, want 5 non-empty items", len(seen))
	}
}
