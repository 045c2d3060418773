package models

import (
	"encoding/json"
	"strconv"
)

// Sentinel values used when a field cannot be located on the page.
const (
	MissingName      = "Property name cannot be found"
	MissingType      = "Property type cannot be found"
	MissingBedrooms  = "Number of bedrooms cannot be found"
	MissingBathrooms = "Number of bathrooms cannot be found"
)

// Count is either a parsed integer or a sentinel string.
type Count struct {
	value    int
	sentinel string
}

// CountOf returns a Count holding n.
func CountOf(n int) Count {
	return Count{value: n}
}

// MissingCount returns a Count holding a sentinel message.
func MissingCount(sentinel string) Count {
	return Count{sentinel: sentinel}
}

// Int returns the parsed value and whether the count was found.
func (c Count) Int() (int, bool) {
	if c.sentinel != "" {
		return 0, false
	}
	return c.value, true
}

func (c Count) String() string {
	if c.sentinel != "" {
		return c.sentinel
	}
	return strconv.Itoa(c.value)
}

func (c Count) MarshalJSON() ([]byte, error) {
	if c.sentinel != "" {
		return json.Marshal(c.sentinel)
	}
	return json.Marshal(c.value)
}

// AmenitySet splits the amenities panel into present and excluded items.
type AmenitySet struct {
	Available   []string `json:"available"`
	Unavailable []string `json:"notIncluded"`
}

// PropertyRecord is the typed output of one page extraction.
type PropertyRecord struct {
	Name      string      `json:"name"`
	Category  string      `json:"type"`
	Bedrooms  Count       `json:"numberOfBedrooms"`
	Bathrooms Count       `json:"numberOfBathrooms"`
	Amenities *AmenitySet `json:"amenities,omitempty"`
}

// MissingRecord returns a record with every field set to its sentinel.
func MissingRecord(withAmenities bool) PropertyRecord {
	record := PropertyRecord{
		Name:      MissingName,
		Category:  MissingType,
		Bedrooms:  MissingCount(MissingBedrooms),
		Bathrooms: MissingCount(MissingBathrooms),
	}
	if withAmenities {
		record.Amenities = &AmenitySet{
			Available:   make([]string, 0),
			Unavailable: make([]string, 0),
		}
	}
	return record
}

// IsMissing reports whether no field on the page could be located.
func (r PropertyRecord) IsMissing() bool {
	_, hasBedrooms := r.Bedrooms.Int()
	_, hasBathrooms := r.Bathrooms.Int()
	if r.Name != MissingName || r.Category != MissingType || hasBedrooms || hasBathrooms {
		return false
	}
	if r.Amenities != nil && len(r.Amenities.Available)+len(r.Amenities.Unavailable) > 0 {
		return false
	}
	return true
}

// ScrapeResult is the outcome of scraping a single URL.
type ScrapeResult struct {
	URL    string
	Index  int // position in the input list
	Record *PropertyRecord
	Err    error
}
