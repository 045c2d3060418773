package scraper

// CSS selectors for Airbnb listing pages
const (
	// Interaction targets
	CookieBannerButtonSelector = `footer button`
	AmenitiesButtonSelector    = `div[data-section-id="AMENITIES_DEFAULT"] button`
	AmenitiesPanelSelector     = `div[aria-label="What this place offers"]`

	// Extraction targets
	NameSelector         = `h1`
	TypeSelector         = `h2`
	OverviewListSelector = `div[data-section-id="OVERVIEW_DEFAULT_V2"] ol`
	BedroomsSelector     = OverviewListSelector + ` li:nth-child(2)`
	BathroomsSelector    = OverviewListSelector + ` li:nth-child(4)`
	AmenityItemSelector  = AmenitiesPanelSelector + ` li`

	// Root element captured for extraction
	DocumentSelector = `html`
)

// Phrases Airbnb renders on its own "page not found" view.
var (
	NameNotFoundPhrases = []string{"Oops"}
	TypeNotFoundPhrases = []string{"We can't seem to find", "We can’t seem to find"}
)

// UnavailableMarker tags amenities listed as not included.
const UnavailableMarker = "Unavailable"
