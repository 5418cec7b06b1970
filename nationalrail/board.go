package nationalrail

import (
	"github.com/TfGMEnterprise/national-rail-darwin/model"
	"github.com/beevik/etree"
)

// parseStationBoard maps a GetStationBoardResult element
func (p *Parser) parseStationBoard(e *etree.Element) (*model.Board, error) {
	board := &model.Board{}

	for _, child := range e.ChildElements() {
		switch child.Tag {
		case "generatedAt":
			board.GeneratedAt = textOf(child)
		case "locationName":
			board.LocationName = textOf(child)
		case "crs":
			board.Crs = textOf(child)
			p.checkCRS("board", *board.Crs)
		case "platformAvailable":
			board.PlatformAvailable = flagOf(child)
		case "nrccMessages":
			board.NrccMessages = parseMessages(child)
		case "trainServices":
			services, err := p.parseServices(child)
			if err != nil {
				return nil, err
			}
			board.TrainServices = services
		default:
			p.logger().Warnw("unknown board element", "element", child.FullTag())
		}
	}

	return board, nil
}

func parseMessages(e *etree.Element) []string {
	elements := e.SelectElements("message")
	messages := make([]string, 0, len(elements))

	for _, element := range elements {
		messages = append(messages, element.Text())
	}

	return messages
}
