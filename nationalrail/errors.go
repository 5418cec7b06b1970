package nationalrail

import (
	"fmt"
	"github.com/hooklift/gowsdl/soap"
	"strings"
)

// MalformedInputError is returned when the payload is not well-formed XML or
// has no root element.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	if e.Err == nil {
		return "malformed input: no root element"
	}
	return fmt.Sprintf("malformed input: %s", e.Err.Error())
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// ResponseNotFoundError is returned when a required step of the navigation
// path to the response payload is missing. Path holds the steps that were
// found before Step failed.
// Fault is set when the SOAP Body carried a Fault instead of the response.
type ResponseNotFoundError struct {
	Path  []string
	Step  string
	Fault *soap.SOAPFault
}

func (e *ResponseNotFoundError) Error() string {
	msg := fmt.Sprintf("response not found: missing %s", e.Step)
	if len(e.Path) > 0 {
		msg = fmt.Sprintf("%s under %s", msg, strings.Join(e.Path, "/"))
	}
	if e.Fault != nil {
		msg = fmt.Sprintf("%s (soap fault %s: %s)", msg, e.Fault.Code, e.Fault.String)
	}
	return msg
}

// RequiredFieldMissingError is returned when a mandatory child of a
// structured element, e.g. the crs of a location, is absent.
type RequiredFieldMissingError struct {
	Element string
	Field   string
}

func (e *RequiredFieldMissingError) Error() string {
	return fmt.Sprintf("required field missing: %s in %s", e.Field, e.Element)
}
