package nationalrail

import (
	"github.com/TfGMEnterprise/national-rail-darwin/dlog"
	"github.com/TfGMEnterprise/national-rail-darwin/model"
	"github.com/pkg/errors"
)

var nopLogger = dlog.NewNopLogger()

// Parser converts OpenLDBWS SOAP responses into model records.
// A Parser holds no per-call state and may be shared between goroutines.
// The zero value is ready to use and logs nothing.
type Parser struct {
	Logger *dlog.Logger
}

type ParserOption struct {
	f func(*Parser)
}

func NewParser(options ...ParserOption) *Parser {
	p := &Parser{}

	for _, option := range options {
		option.f(p)
	}

	return p
}

// ParserSetLogger sets the logger unknown elements and unexpected values are
// reported to
func ParserSetLogger(logger *dlog.Logger) ParserOption {
	return ParserOption{
		func(p *Parser) {
			p.Logger = logger
		},
	}
}

func (p *Parser) logger() *dlog.Logger {
	if p.Logger == nil {
		return nopLogger
	}
	return p.Logger
}

func (p *Parser) ParseArrivalBoard(soapResponse []byte) (*model.Board, error) {
	return p.parseBoard(soapResponse, OperationGetArrivalBoard)
}

func (p *Parser) ParseArrivalBoardWithDetails(soapResponse []byte) (*model.Board, error) {
	return p.parseBoard(soapResponse, OperationGetArrBoardWithDetails)
}

func (p *Parser) ParseArrivalDepartureBoard(soapResponse []byte) (*model.Board, error) {
	return p.parseBoard(soapResponse, OperationGetArrivalDepartureBoard)
}

func (p *Parser) ParseArrivalDepartureBoardWithDetails(soapResponse []byte) (*model.Board, error) {
	return p.parseBoard(soapResponse, OperationGetArrDepBoardWithDetails)
}

// ParseDepartureBoard parses a GetDepartureBoard response
func (p *Parser) ParseDepartureBoard(soapResponse []byte) (*model.Board, error) {
	return p.parseBoard(soapResponse, OperationGetDepartureBoard)
}

// ParseDepartureBoardWithDetails parses a GetDepBoardWithDetails response.
// Its services carry subsequentCallingPoints.
func (p *Parser) ParseDepartureBoardWithDetails(soapResponse []byte) (*model.Board, error) {
	return p.parseBoard(soapResponse, OperationGetDepBoardWithDetails)
}

func (p *Parser) ParseNextDepartures(soapResponse []byte) (*model.Departures, error) {
	return p.parseDepartures(soapResponse, OperationGetNextDepartures)
}

func (p *Parser) ParseNextDeparturesWithDetails(soapResponse []byte) (*model.Departures, error) {
	return p.parseDepartures(soapResponse, OperationGetNextDeparturesWithDetails)
}

// ParseFastestDepartures parses a GetFastestDepartures response. Only the
// first destination of the response is read.
func (p *Parser) ParseFastestDepartures(soapResponse []byte) (*model.Departures, error) {
	return p.parseDepartures(soapResponse, OperationGetFastestDepartures)
}

func (p *Parser) ParseFastestDeparturesWithDetails(soapResponse []byte) (*model.Departures, error) {
	return p.parseDepartures(soapResponse, OperationGetFastestDeparturesWithDetails)
}

// ParseServiceDetails parses a GetServiceDetails response
func (p *Parser) ParseServiceDetails(soapResponse []byte) (*model.ServiceDetails, error) {
	op := OperationGetServiceDetails

	response, err := extractResponse(soapResponse, op.ResponseElement())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	result, err := descend(response, responsePath(op), op.resultElement())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	service, err := p.parseService(result)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	p.logger().Debugw("parsed service details", "operation", op)

	return &model.ServiceDetails{ServiceDetails: *service}, nil
}

func (p *Parser) parseBoard(soapResponse []byte, op Operation) (*model.Board, error) {
	response, err := extractResponse(soapResponse, op.ResponseElement())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	result, err := descend(response, responsePath(op), op.resultElement())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	board, err := p.parseStationBoard(result)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	p.logger().Debugw("parsed station board", "operation", op, "services", len(board.TrainServices))

	return board, nil
}

func (p *Parser) parseDepartures(soapResponse []byte, op Operation) (*model.Departures, error) {
	response, err := extractResponse(soapResponse, op.ResponseElement())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	destination, err := extractDestination(response, responsePath(op))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	services, err := p.parseServices(destination)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", op)
	}

	p.logger().Debugw("parsed departures", "operation", op, "services", len(services))

	return &model.Departures{TrainServices: services}, nil
}
