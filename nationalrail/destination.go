package nationalrail

import "github.com/beevik/etree"

// extractDestination returns the first destination of a next or fastest
// departures response. Its children are the services found for it.
func extractDestination(response *etree.Element, path []string) (*etree.Element, error) {
	return descend(response, path, "DeparturesBoard", "departures", "destination")
}
