package model

// Point is a geographic position in decimal degrees.
// Ranges are not enforced; values outside [-90,90]/[-180,180] pass through.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LatLngStream mirrors the latlng stream returned by the Strava activity streams API.
// Only Data is read; the remaining fields are kept because the upstream schema carries them.
type LatLngStream struct {
	Data         [][]float64 `json:"data"`
	SeriesType   string      `json:"series_type"`
	OriginalSize int         `json:"original_size"`
	Resolution   string      `json:"resolution"`
}
