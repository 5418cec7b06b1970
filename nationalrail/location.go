package nationalrail

import (
	"github.com/TfGMEnterprise/national-rail-darwin/model"
	"github.com/beevik/etree"
)

// parseLocation maps an origin or destination location. locationName and
// crs are mandatory; via is optional.
func parseLocation(e *etree.Element) (model.Location, error) {
	name := e.SelectElement("locationName")
	if name == nil {
		return model.Location{}, &RequiredFieldMissingError{Element: "location", Field: "locationName"}
	}

	crs := e.SelectElement("crs")
	if crs == nil {
		return model.Location{}, &RequiredFieldMissingError{Element: "location", Field: "crs"}
	}

	location := model.Location{
		Name: name.Text(),
		Crs:  crs.Text(),
	}

	if via := e.SelectElement("via"); via != nil {
		location.Via = textOf(via)
	}

	return location, nil
}

func parseLocationList(e *etree.Element) ([]model.Location, error) {
	elements := e.SelectElements("location")
	locations := make([]model.Location, 0, len(elements))

	for _, element := range elements {
		location, err := parseLocation(element)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, nil
}
