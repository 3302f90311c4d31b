package render

import "tutorial-landing/pkg/models"

// EventCard is one tile of the events grid.
type EventCard struct {
	models.Event
	Index    int
	Delay    string
	LinkText string
}

// HasLink reports whether the card links to the event website.
func (c EventCard) HasLink() bool {
	return c.Link != ""
}

// EventGrid is the projected events section.
type EventGrid struct {
	Cards    []EventCard
	Centered bool
}

// Class is the CSS class list of the grid element.
func (g EventGrid) Class() string {
	if g.Centered {
		return "events-grid events-grid--centered"
	}
	return "events-grid"
}

// ProjectEvents builds the events grid. Exactly two events use the centered layout.
func ProjectEvents(events []models.Event) EventGrid {
	grid := EventGrid{
		Cards:    make([]EventCard, len(events)),
		Centered: len(events) == 2,
	}
	for i, e := range events {
		card := EventCard{Event: e, Index: i, Delay: stagger(i)}
		if e.Link != "" {
			card.LinkText = "Visit Website"
		}
		grid.Cards[i] = card
	}
	return grid
}
