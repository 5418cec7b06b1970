package nationalrail

// Operation identifies an OpenLDBWS request/response pair
type Operation string

const (
	OperationGetDepartureBoard               Operation = "GetDepartureBoard"
	OperationGetArrivalBoard                 Operation = "GetArrivalBoard"
	OperationGetArrivalDepartureBoard        Operation = "GetArrivalDepartureBoard"
	OperationGetServiceDetails               Operation = "GetServiceDetails"
	OperationGetDepBoardWithDetails          Operation = "GetDepBoardWithDetails"
	OperationGetArrBoardWithDetails          Operation = "GetArrBoardWithDetails"
	OperationGetArrDepBoardWithDetails       Operation = "GetArrDepBoardWithDetails"
	OperationGetNextDepartures               Operation = "GetNextDepartures"
	OperationGetNextDeparturesWithDetails    Operation = "GetNextDeparturesWithDetails"
	OperationGetFastestDepartures            Operation = "GetFastestDepartures"
	OperationGetFastestDeparturesWithDetails Operation = "GetFastestDeparturesWithDetails"
)

// ResponseElement returns the name of the element wrapping the operation's
// result inside the SOAP Body, e.g. GetDepartureBoardResponse
func (o Operation) ResponseElement() string {
	return string(o) + "Response"
}

// resultElement is the element under the response element holding a board
// or service details payload
func (o Operation) resultElement() string {
	switch o {
	case OperationGetServiceDetails:
		return "GetServiceDetailsResult"
	default:
		return "GetStationBoardResult"
	}
}
