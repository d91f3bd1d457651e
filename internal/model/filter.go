package model

// PropertyFilter represents structured search constraints extracted from a
// free-text message. Every field is independently optional; a nil field
// means "no constraint".
type PropertyFilter struct {
	City      *string  `json:"city,omitempty"`
	MaxPrice  *float64 `json:"max_price,omitempty"`
	Amenity   *string  `json:"amenity,omitempty"`
	Bedrooms  *int     `json:"bedrooms,omitempty"`
	Bathrooms *int     `json:"bathrooms,omitempty"`
}

// IsEmpty reports whether no constraint is set
func (f *PropertyFilter) IsEmpty() bool {
	return f.City == nil && f.MaxPrice == nil && f.Amenity == nil &&
		f.Bedrooms == nil && f.Bathrooms == nil
}
