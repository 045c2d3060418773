package scraper

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/emon51/property-scraper/models"
)

// Extractor turns a rendered listing page into a PropertyRecord. Missing
// elements become sentinel values; extraction itself never fails.
type Extractor struct {
	scrapeAmenities bool
}

func NewExtractor(scrapeAmenities bool) *Extractor {
	return &Extractor{scrapeAmenities: scrapeAmenities}
}

func (e *Extractor) ExtractHTML(html string) models.PropertyRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.MissingRecord(e.scrapeAmenities)
	}
	return e.Extract(doc)
}

func (e *Extractor) Extract(doc *goquery.Document) models.PropertyRecord {
	record := models.PropertyRecord{
		Name:      textOrSentinel(doc, NameSelector, NameNotFoundPhrases, models.MissingName),
		Category:  textOrSentinel(doc, TypeSelector, TypeNotFoundPhrases, models.MissingType),
		Bedrooms:  countOrSentinel(doc, BedroomsSelector, models.MissingBedrooms),
		Bathrooms: countOrSentinel(doc, BathroomsSelector, models.MissingBathrooms),
	}

	if e.scrapeAmenities {
		amenities := extractAmenities(doc)
		record.Amenities = &amenities
	}

	return record
}

func firstText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

func textOrSentinel(doc *goquery.Document, selector string, notFound []string, sentinel string) string {
	text := firstText(doc, selector)
	if text == "" {
		return sentinel
	}
	for _, phrase := range notFound {
		if strings.Contains(text, phrase) {
			return sentinel
		}
	}
	return text
}

// countOrSentinel reads items shaped like "<word> <number> ...".
func countOrSentinel(doc *goquery.Document, selector, sentinel string) models.Count {
	n, ok := parseCount(firstText(doc, selector))
	if !ok {
		return models.MissingCount(sentinel)
	}
	return models.CountOf(n)
}

func parseCount(text string) (int, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func extractAmenities(doc *goquery.Document) models.AmenitySet {
	amenities := models.AmenitySet{
		Available:   make([]string, 0),
		Unavailable: make([]string, 0),
	}

	doc.Find(AmenityItemSelector).Each(func(_ int, item *goquery.Selection) {
		text := strings.TrimSpace(item.Text())
		if text == "" {
			return
		}
		if strings.Contains(text, UnavailableMarker) {
			amenities.Unavailable = append(amenities.Unavailable, text)
		} else {
			amenities.Available = append(amenities.Available, text)
		}
	})

	return amenities
}
