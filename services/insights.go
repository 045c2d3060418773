package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/emon51/property-scraper/models"
)

type AmenityCount struct {
	Name  string
	Count int
}

type Insights struct {
	TotalURLs        int
	Scraped          int
	Failed           int
	NotFoundPages    int
	AverageBedrooms  float64
	AverageBathrooms float64
	TopAmenities     []AmenityCount
	Failures         map[string]string
}

type InsightGenerator struct{}

func NewInsightGenerator() *InsightGenerator {
	return &InsightGenerator{}
}

func (ig *InsightGenerator) Generate(results []models.ScrapeResult) Insights {
	insights := Insights{
		TotalURLs:    len(results),
		TopAmenities: make([]AmenityCount, 0),
		Failures:     make(map[string]string),
	}

	var bedrooms, bathrooms, bedroomCount, bathroomCount int
	amenityCounts := make(map[string]int)

	for _, result := range results {
		if result.Err != nil || result.Record == nil {
			insights.Failed++
			if result.Err != nil {
				insights.Failures[result.URL] = result.Err.Error()
			}
			continue
		}

		insights.Scraped++
		record := result.Record

		if record.IsMissing() {
			insights.NotFoundPages++
		}

		if n, ok := record.Bedrooms.Int(); ok {
			bedrooms += n
			bedroomCount++
		}
		if n, ok := record.Bathrooms.Int(); ok {
			bathrooms += n
			bathroomCount++
		}

		if record.Amenities != nil {
			for _, amenity := range record.Amenities.Available {
				amenityCounts[amenity]++
			}
		}
	}

	if bedroomCount > 0 {
		insights.AverageBedrooms = float64(bedrooms) / float64(bedroomCount)
	}
	if bathroomCount > 0 {
		insights.AverageBathrooms = float64(bathrooms) / float64(bathroomCount)
	}

	insights.TopAmenities = ig.getTopAmenities(amenityCounts, 5)

	return insights
}

func (ig *InsightGenerator) getTopAmenities(counts map[string]int, count int) []AmenityCount {
	top := make([]AmenityCount, 0, len(counts))
	for name, n := range counts {
		top = append(top, AmenityCount{Name: name, Count: n})
	}

	// Most common first, ties alphabetical
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Name < top[j].Name
	})

	if len(top) > count {
		return top[:count]
	}
	return top
}

func (ig *InsightGenerator) PrintReport(w io.Writer, insights Insights) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
	fmt.Fprintln(w, "PROPERTY DETAILS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	fmt.Fprintf(w, "\nURLs processed: %d\n", insights.TotalURLs)
	fmt.Fprintf(w, "Records extracted: %d\n", insights.Scraped)
	fmt.Fprintf(w, "Failed: %d\n", insights.Failed)
	fmt.Fprintf(w, "Pages with no property data: %d\n", insights.NotFoundPages)

	fmt.Fprintf(w, "\nAverage bedrooms: %.2f\n", insights.AverageBedrooms)
	fmt.Fprintf(w, "Average bathrooms: %.2f\n", insights.AverageBathrooms)

	if len(insights.TopAmenities) > 0 {
		fmt.Fprintln(w, "\nMost common amenities:")
		for i, amenity := range insights.TopAmenities {
			fmt.Fprintf(w, "  %d. %s (%d)\n", i+1, amenity.Name, amenity.Count)
		}
	}

	if len(insights.Failures) > 0 {
		urls := make([]string, 0, len(insights.Failures))
		for u := range insights.Failures {
			urls = append(urls, u)
		}
		sort.Strings(urls)

		fmt.Fprintln(w, "\nFailures:")
		for _, u := range urls {
			fmt.Fprintf(w, "  %s: %s\n", u, insights.Failures[u])
		}
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
}
