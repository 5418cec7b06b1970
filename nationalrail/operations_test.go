package nationalrail

import (
	"github.com/TfGMEnterprise/national-rail-darwin/test_helpers"
	"testing"
)

func TestOperation_ResponseElement(t *testing.T) {
	t.Run("should return the response element for each operation", func(t *testing.T) {
		cases := map[Operation]string{
			OperationGetDepartureBoard:               "GetDepartureBoardResponse",
			OperationGetArrivalBoard:                 "GetArrivalBoardResponse",
			OperationGetArrivalDepartureBoard:        "GetArrivalDepartureBoardResponse",
			OperationGetServiceDetails:               "GetServiceDetailsResponse",
			OperationGetDepBoardWithDetails:          "GetDepBoardWithDetailsResponse",
			OperationGetArrBoardWithDetails:          "GetArrBoardWithDetailsResponse",
			OperationGetArrDepBoardWithDetails:       "GetArrDepBoardWithDetailsResponse",
			OperationGetNextDepartures:               "GetNextDeparturesResponse",
			OperationGetNextDeparturesWithDetails:    "GetNextDeparturesWithDetailsResponse",
			OperationGetFastestDepartures:            "GetFastestDeparturesResponse",
			OperationGetFastestDeparturesWithDetails: "GetFastestDeparturesWithDetailsResponse",
		}

		for op, want := range cases {
			test_helpers.AssertString(t, op.ResponseElement(), want)
		}
	})
}
