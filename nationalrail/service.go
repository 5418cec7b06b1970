package nationalrail

import (
	"github.com/TfGMEnterprise/national-rail-darwin/model"
	"github.com/beevik/etree"
)

// parseService maps the children of a service element onto a Service using
// the serviceFields tables. Unknown children are logged and skipped.
func (p *Parser) parseService(e *etree.Element) (*model.Service, error) {
	service := &model.Service{}

	for _, child := range e.ChildElements() {
		name := child.Tag

		if set, ok := serviceFields.strings[name]; ok {
			set(service, textOf(child))
			continue
		}

		if set, ok := serviceFields.booleans[name]; ok {
			set(service, flagOf(child))
			continue
		}

		if set, ok := serviceFields.locationLists[name]; ok {
			locations, err := parseLocationList(child)
			if err != nil {
				return nil, err
			}
			set(service, locations)
			continue
		}

		if set, ok := serviceFields.formations[name]; ok {
			set(service, p.parseFormation(child))
			continue
		}

		if set, ok := serviceFields.callingPoints[name]; ok {
			list := child.SelectElement("callingPointList")
			if list == nil {
				return nil, &RequiredFieldMissingError{Element: name, Field: "callingPointList"}
			}
			set(service, parseCallingPointList(list))
			continue
		}

		p.logger().Warnw("unknown service element", "element", child.FullTag())
	}

	if service.Crs != nil {
		p.checkCRS("service", *service.Crs)
	}

	return service, nil
}

// parseServices maps every child element of e as a service, in order
func (p *Parser) parseServices(e *etree.Element) ([]model.Service, error) {
	children := e.ChildElements()
	services := make([]model.Service, 0, len(children))

	for _, child := range children {
		service, err := p.parseService(child)
		if err != nil {
			return nil, err
		}
		services = append(services, *service)
	}

	return services, nil
}
