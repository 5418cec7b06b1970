package model

// Service contains the timing, identity and routing of one train movement.
// Every field is optional: presence follows what the source included for the
// service, so a nil pointer or nil slice means the element was absent.
type Service struct {
	Sta          *string `json:"sta,omitempty"`
	Eta          *string `json:"eta,omitempty"`
	Std          *string `json:"std,omitempty"`
	Etd          *string `json:"etd,omitempty"`
	Platform     *string `json:"platform,omitempty"`
	Operator     *string `json:"operator,omitempty"`
	OperatorCode *string `json:"operatorCode,omitempty"`
	ServiceType  *string `json:"serviceType,omitempty"`
	CancelReason *string `json:"cancelReason,omitempty"`
	DelayReason  *string `json:"delayReason,omitempty"`
	ServiceID    *string `json:"serviceID,omitempty"`
	Length       *string `json:"length,omitempty"`
	Rsid         *string `json:"rsid,omitempty"`
	Crs          *string `json:"crs,omitempty"`
	LocationName *string `json:"locationName,omitempty"`
	GeneratedAt  *string `json:"generatedAt,omitempty"`

	IsCircularRoute         *bool `json:"isCircularRoute,omitempty"`
	IsCancelled             *bool `json:"isCancelled,omitempty"`
	FilterLocationCancelled *bool `json:"filterLocationCancelled,omitempty"`
	DetachFront             *bool `json:"detachFront,omitempty"`
	IsReverseFormation      *bool `json:"isReverseFormation,omitempty"`
	FutureCancellation      *bool `json:"futureCancellation,omitempty"`
	FutureDelay             *bool `json:"futureDelay,omitempty"`

	Origin              []Location `json:"origin,omitempty"`
	Destination         []Location `json:"destination,omitempty"`
	CurrentOrigins      []Location `json:"currentOrigins,omitempty"`
	CurrentDestinations []Location `json:"currentDestinations,omitempty"`

	Formation *Formation `json:"formation,omitempty"`

	PreviousCallingPoints   []CallingPoint `json:"previousCallingPoints,omitempty"`
	SubsequentCallingPoints []CallingPoint `json:"subsequentCallingPoints,omitempty"`
}

// Location is an origin or destination of a service. Via disambiguates
// services with more than one possible route, e.g. "via Manchester Piccadilly"
type Location struct {
	Name string  `json:"name"`
	Crs  string  `json:"crs"`
	Via  *string `json:"via,omitempty"`
}

// CallingPoint is an intermediate or terminal stop on a service's route.
// St is the scheduled time; Et the estimated or actual time
type CallingPoint struct {
	Length       *string `json:"length,omitempty"`
	Crs          *string `json:"crs,omitempty"`
	LocationName *string `json:"locationName,omitempty"`
	St           *string `json:"st,omitempty"`
	Et           *string `json:"et,omitempty"`
}
