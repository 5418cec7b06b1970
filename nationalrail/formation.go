package nationalrail

import (
	"github.com/TfGMEnterprise/national-rail-darwin/model"
	"github.com/beevik/etree"
)

// parseFormation maps a formation element. coaches and avgLoading may both
// be present; neither is required.
func (p *Parser) parseFormation(e *etree.Element) *model.Formation {
	formation := &model.Formation{}

	for _, child := range e.ChildElements() {
		switch child.Tag {
		case "avgLoading":
			formation.AvgLoading = textOf(child)
		case "coaches":
			formation.Coaches = p.parseCoaches(child)
		default:
			p.logger().Warnw("unknown formation element", "element", child.FullTag())
		}
	}

	return formation
}

func (p *Parser) parseCoaches(e *etree.Element) []model.Coach {
	elements := e.SelectElements("coach")
	coaches := make([]model.Coach, 0, len(elements))

	for _, element := range elements {
		coach := model.Coach{}

		if number := element.SelectAttr("number"); number != nil {
			value := number.Value
			coach.Number = &value
		}

		for _, child := range element.ChildElements() {
			switch child.Tag {
			case "toilet":
				coach.Toilet = textOf(child)
			case "coachClass":
				coach.Class = textOf(child)
			case "loading":
				coach.Loading = textOf(child)
			default:
				p.logger().Warnw("unknown coach element", "element", child.FullTag())
			}
		}

		coaches = append(coaches, coach)
	}

	return coaches
}
