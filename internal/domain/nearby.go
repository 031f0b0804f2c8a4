package domain

// NearbyMatch is derived per search and never persisted. DistanceMeters is
// the exact great-circle distance rounded to the nearest meter, always within
// the requested radius.
type NearbyMatch struct {
	User           User     `json:"user"`
	Profile        Profile  `json:"profile"`
	Location       Location `json:"location"`
	DistanceMeters int      `json:"distance_meters"`
}
