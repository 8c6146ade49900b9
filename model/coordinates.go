package model

// Coordinates carries a geocoded point. Xcoord is latitude, Ycoord is
// longitude, following the field names of the stored documents.
type Coordinates struct {
	Xcoord float64 `json:"xcoord"`
	Ycoord float64 `json:"ycoord"`
}
