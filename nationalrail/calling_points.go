package nationalrail

import (
	"github.com/TfGMEnterprise/national-rail-darwin/model"
	"github.com/beevik/etree"
)

// parseCallingPointList maps each child of a callingPointList in document
// order. Children other than length, crs, locationName, st and et are skipped.
func parseCallingPointList(e *etree.Element) []model.CallingPoint {
	children := e.ChildElements()
	points := make([]model.CallingPoint, 0, len(children))

	for _, child := range children {
		point := model.CallingPoint{}

		for _, field := range child.ChildElements() {
			switch field.Tag {
			case "length":
				point.Length = textOf(field)
			case "crs":
				point.Crs = textOf(field)
			case "locationName":
				point.LocationName = textOf(field)
			case "st":
				point.St = textOf(field)
			case "et":
				point.Et = textOf(field)
			}
		}

		points = append(points, point)
	}

	return points
}
