// Package render projects page content into view models. Everything except
// PugRenderer is pure and performs no I/O.
package render

import (
	"fmt"
	"strconv"

	"tutorial-landing/pkg/models"
	"tutorial-landing/pkg/youtube"
)

// VideoCard is one tile of the video grid.
type VideoCard struct {
	ID          string
	Title       string
	Description string
	Thumbnail   string
	IsNew       bool
	Index       int
	Delay       string
	PlayHref    string
}

// PlayAction is what activating a card produces: the video to open and the
// embed address of the player.
type PlayAction struct {
	VideoID  string
	Title    string
	EmbedURL string
}

// Play returns the action for this card.
func (c VideoCard) Play() PlayAction {
	return PlayAction{VideoID: c.ID, Title: c.Title, EmbedURL: youtube.EmbedURL(c.ID)}
}

// PlayActionFor returns the action of the card that shows v.
func PlayActionFor(v models.Video) PlayAction {
	return VideoCard{ID: v.ID, Title: v.Title}.Play()
}

// Toggle switches between the featured and the full video view.
type Toggle struct {
	Label   string
	Href    string
	ShowAll bool
}

// VideoGrid is the projected video section.
type VideoGrid struct {
	Cards   []VideoCard
	Toggle  *Toggle
	Total   int
	ShowAll bool
}

// ProjectVideos builds the video grid. The featured view holds the first
// featured records in order and offers a toggle when there are more; the full
// view holds every record and a toggle back. Sequences that fit get no toggle.
func ProjectVideos(videos []models.Video, featured int, showAll bool) VideoGrid {
	total := len(videos)
	grid := VideoGrid{Total: total}

	visible := videos
	switch {
	case total <= featured:
	case showAll:
		grid.ShowAll = true
		grid.Toggle = &Toggle{Label: "Show featured tutorials"}
	default:
		visible = videos[:featured]
		grid.Toggle = &Toggle{Label: fmt.Sprintf("View all tutorials (%d)", total), ShowAll: true}
	}

	grid.Cards = make([]VideoCard, len(visible))
	for i, v := range visible {
		grid.Cards[i] = VideoCard{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Thumbnail:   v.Thumbnail,
			IsNew:       v.IsNew,
			Index:       i,
			Delay:       stagger(i),
		}
	}
	return grid
}

// withRoutes fills in the links of the grid.
func (g VideoGrid) withRoutes(r Routes) VideoGrid {
	for i := range g.Cards {
		g.Cards[i].PlayHref = r.PlayHref(g.Cards[i].ID, g.ShowAll)
	}
	if g.Toggle != nil {
		t := *g.Toggle
		t.Href = r.ViewHref(t.ShowAll)
		g.Toggle = &t
	}
	return g
}

func stagger(index int) string {
	return strconv.FormatFloat(float64(index)/10, 'f', -1, 64) + "s"
}
