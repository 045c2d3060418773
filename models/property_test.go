package models

import (
	"encoding/json"
	"testing"
)

func TestCountJSON(t *testing.T) {
	tests := []struct {
		name  string
		count Count
		want  string
	}{
		{"number", CountOf(3), `3`},
		{"zero", CountOf(0), `0`},
		{"sentinel", MissingCount(MissingBedrooms), `"Number of bedrooms cannot be found"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.count)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCountInt(t *testing.T) {
	if n, ok := CountOf(2).Int(); !ok || n != 2 {
		t.Errorf("CountOf(2).Int() = %d, %v", n, ok)
	}
	if _, ok := MissingCount(MissingBathrooms).Int(); ok {
		t.Error("sentinel count reported as found")
	}
	if got := MissingCount(MissingBathrooms).String(); got != MissingBathrooms {
		t.Errorf("String() = %q", got)
	}
}

func TestMissingRecord(t *testing.T) {
	record := MissingRecord(true)

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"name":"Property name cannot be found","type":"Property type cannot be found",` +
		`"numberOfBedrooms":"Number of bedrooms cannot be found",` +
		`"numberOfBathrooms":"Number of bathrooms cannot be found",` +
		`"amenities":{"available":[],"notIncluded":[]}}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}

	if !record.IsMissing() {
		t.Error("sentinel record should report IsMissing")
	}

	if MissingRecord(false).Amenities != nil {
		t.Error("amenities should be omitted when not requested")
	}
}

func TestIsMissingWithData(t *testing.T) {
	record := MissingRecord(true)
	record.Bedrooms = CountOf(1)
	if record.IsMissing() {
		t.Error("record with a bedroom count is not missing")
	}

	record = MissingRecord(true)
	record.Amenities.Unavailable = append(record.Amenities.Unavailable, "Unavailable: TV")
	if record.IsMissing() {
		t.Error("record with amenities is not missing")
	}
}
