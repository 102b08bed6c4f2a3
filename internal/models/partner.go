package models

// Partner represents a discount-offering business affiliated with the
// student council. Partners come from a static dataset and are immutable
// at runtime.
type Partner struct {
	ID       int          `json:"id"`                 // ID is the unique identifier within the dataset.
	Name     string       `json:"name"`               // Name is the business name.
	Address  string       `json:"address"`            // Address is the free-text address.
	Phone    string       `json:"phone,omitempty"`    // Phone is the contact number, if any.
	Category string       `json:"category"`           // Category groups partners (음식점, 카페, ...).
	Location *Coordinates `json:"location,omitempty"` // Location holds precomputed coordinates, if known.
	Benefits []string     `json:"benefits"`           // Benefits lists the discount descriptions.
}
