package nationalrail

import (
	"github.com/beevik/etree"
	"github.com/hooklift/gowsdl/soap"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	"strings"
)

// extractResponse reads a SOAP payload and returns the responseType element
// found at Envelope/Body/responseType. Tags are matched by local name, so any
// namespace prefix is accepted.
func extractResponse(soapResponse []byte, responseType string) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if err := doc.ReadFromBytes(soapResponse); err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, &MalformedInputError{}
	}

	if err := checkDocumentLevel(doc, root); err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	if root.Tag != "Envelope" {
		return nil, &ResponseNotFoundError{Step: "Envelope"}
	}

	body := root.SelectElement("Body")
	if body == nil {
		return nil, &ResponseNotFoundError{Path: []string{"Envelope"}, Step: "Body"}
	}

	response := body.SelectElement(responseType)
	if response == nil {
		return nil, &ResponseNotFoundError{
			Path:  []string{"Envelope", "Body"},
			Step:  responseType,
			Fault: parseFault(body),
		}
	}

	return response, nil
}

// checkDocumentLevel rejects content the reader accepts outside the root
// element: a second element or non-whitespace text
func checkDocumentLevel(doc *etree.Document, root *etree.Element) error {
	for _, token := range doc.Child {
		switch t := token.(type) {
		case *etree.Element:
			if t != root {
				return errors.Errorf("second root element %s", t.FullTag())
			}
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return errors.Errorf("text outside the root element: %q", strings.TrimSpace(t.Data))
			}
		}
	}

	return nil
}

// descend follows steps down from e, one child per step. path is the route
// already taken to e and is only used for reporting.
func descend(e *etree.Element, path []string, steps ...string) (*etree.Element, error) {
	path = append([]string(nil), path...)
	current := e

	for _, step := range steps {
		next := current.SelectElement(step)
		if next == nil {
			return nil, &ResponseNotFoundError{Path: path, Step: step}
		}

		path = append(path, step)
		current = next
	}

	return current, nil
}

func responsePath(op Operation) []string {
	return []string{"Envelope", "Body", op.ResponseElement()}
}

// parseFault returns the Fault carried by a SOAP Body, or nil if there is none
func parseFault(body *etree.Element) *soap.SOAPFault {
	fault := body.SelectElement("Fault")
	if fault == nil {
		return nil
	}

	return &soap.SOAPFault{
		Code:   childText(fault, "faultcode"),
		String: childText(fault, "faultstring"),
		Actor:  childText(fault, "faultactor"),
	}
}

func childText(e *etree.Element, tag string) string {
	child := e.SelectElement(tag)
	if child == nil {
		return ""
	}
	return child.Text()
}

func textOf(e *etree.Element) *string {
	text := e.Text()
	return &text
}

func flagOf(e *etree.Element) *bool {
	flag := e.Text() == "true"
	return &flag
}
