package models

// Coordinates represents a geographical point defined by its latitude and longitude.
// JSON field names match the persisted cache snapshot format of the original site
// ({"lat": ..., "lng": ...}) so existing snapshots load cleanly.
type Coordinates struct {
	Latitude  float64 `json:"lat"` // Latitude of the geographical point.
	Longitude float64 `json:"lng"` // Longitude of the geographical point.
}
