package model

// Formation is the composition of a train at a location: either the detailed
// coaches, an aggregate average loading, both or neither.
type Formation struct {
	AvgLoading *string `json:"avgLoading,omitempty"`
	Coaches    []Coach `json:"coaches,omitempty"`
}

type Coach struct {
	Number  *string `json:"number,omitempty"`
	Toilet  *string `json:"toilet,omitempty"`
	Class   *string `json:"class,omitempty"`
	Loading *string `json:"loading,omitempty"`
}
