package model

// Board contains the location metadata, operational messages and the train
// services of a station arrivals and/or departures board.
// A nil field was not present in the source response.
type Board struct {
	GeneratedAt       *string   `json:"generatedAt,omitempty"`
	LocationName      *string   `json:"locationName,omitempty"`
	Crs               *string   `json:"crs,omitempty"`
	PlatformAvailable *bool     `json:"platformAvailable,omitempty"`
	NrccMessages      []string  `json:"nrccMessages,omitempty"`
	TrainServices     []Service `json:"trainServices,omitempty"`
}

// Departures contains the service found for a next or fastest departure
// request: at most one
type Departures struct {
	TrainServices []Service `json:"trainServices"`
}

// ServiceDetails wraps the single service returned by a service details request
type ServiceDetails struct {
	ServiceDetails Service `json:"serviceDetails"`
}
