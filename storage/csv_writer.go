package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/emon51/property-scraper/models"
)

var ErrWrite = errors.New("write failed")

// Header is the fixed column set of the output file.
var Header = []string{
	"PropertyName",
	"PropertyType",
	"NumberOfBedrooms",
	"NumberOfBathrooms",
	"AvailableAmenities",
	"UnavailableAmenities",
}

// AmenitySeparator joins list-valued amenity columns.
const AmenitySeparator = "; "

type CSVWriter struct {
	filename   string
	appendMode bool
}

func NewCSVWriter(filename string, appendMode bool) *CSVWriter {
	return &CSVWriter{filename: filename, appendMode: appendMode}
}

// WriteRecords writes one row per record. In append mode the header is only
// written when the file is new or empty.
func (w *CSVWriter) WriteRecords(records []models.PropertyRecord) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if w.appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	file, err := os.OpenFile(w.filename, flags, 0644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrWrite, w.filename, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", ErrWrite, w.filename, err)
	}

	writer := csv.NewWriter(file)

	if info.Size() == 0 {
		if err := writer.Write(Header); err != nil {
			return fmt.Errorf("%w: header: %v", ErrWrite, err)
		}
	}

	for _, record := range records {
		if err := writer.Write(toRow(record)); err != nil {
			return fmt.Errorf("%w: row: %v", ErrWrite, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush %s: %v", ErrWrite, w.filename, err)
	}

	return nil
}

func toRow(record models.PropertyRecord) []string {
	var available, unavailable string
	if record.Amenities != nil {
		available = strings.Join(record.Amenities.Available, AmenitySeparator)
		unavailable = strings.Join(record.Amenities.Unavailable, AmenitySeparator)
	}

	return []string{
		record.Name,
		record.Category,
		record.Bedrooms.String(),
		record.Bathrooms.String(),
		available,
		unavailable,
	}
}
