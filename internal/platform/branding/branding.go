// Package branding stores product identity constants shared across surfaces.
//
// The dashboard content never depends on these values for behavior; they are
// consumed only by the styling layer and page chrome.
package branding

// AppName is the product display name.
const AppName = "SOFEA Impact Board"

// Tagline appears under the wordmark in the top navigation.
const Tagline = "Damon Runyon Impact"

// PrimaryColor is the brand accent used by charts, links, and buttons.
const PrimaryColor = "#4c00b0"

// DarkFirst selects the dark palette as the default theme.
const DarkFirst = true

// Dark palette values. Kept alongside PrimaryColor so the styling layer has a
// single source for the theme.
const (
	BackgroundColor = "#0e0f17"
	PanelColor      = "#151826"
	TextColor       = "#e9e9f2"
	SubtextColor    = "#b9bdd1"
	BorderColor     = "rgba(255,255,255,0.08)"
)
