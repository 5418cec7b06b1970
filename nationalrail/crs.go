package nationalrail

import "regexp"

var crsPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// isCRSCode reports whether code is a well-formed National Rail Computer
// Reservation System (CRS) code: three uppercase letters, e.g. "MAN".
// It does not check that the station exists.
func isCRSCode(code string) bool {
	return crsPattern.MatchString(code)
}

// checkCRS logs codes that are not well-formed. The value is still copied
// into the record unchanged.
func (p *Parser) checkCRS(element string, code string) {
	if !isCRSCode(code) {
		p.logger().Infow("unexpected crs code", "element", element, "crs", code)
	}
}
