package render

import (
	"strings"

	"tutorial-landing/pkg/models"
	"tutorial-landing/pkg/youtube"
)

// SocialLink is one profile icon of an expert card.
type SocialLink struct {
	Kind  string
	Title string
	Href  string
}

// ExpertCard is one tile of the experts grid.
type ExpertCard struct {
	Name         string
	Title        string
	Company      string
	Location     string
	Photo        string
	Bio          string
	Expertise    []string
	Achievements []string
	Social       []SocialLink
	TalksHref    string
	Index        int
	Delay        string
}

// ExpertGrid is the projected experts section.
type ExpertGrid struct {
	Cards []ExpertCard
}

// ProjectExperts builds the experts grid with bios shortened to bioLimit.
func ProjectExperts(experts []models.Expert, bioLimit int) ExpertGrid {
	grid := ExpertGrid{Cards: make([]ExpertCard, len(experts))}
	for i, e := range experts {
		grid.Cards[i] = ExpertCard{
			Name:         e.Name,
			Title:        e.Title,
			Company:      e.Company,
			Location:     e.Location,
			Photo:        e.Photo,
			Bio:          youtube.Truncate(e.Bio, bioLimit),
			Expertise:    e.Expertise,
			Achievements: e.Achievements,
			Social:       socialLinks(e.Social),
			TalksHref:    e.Social.Sessionize,
			Index:        i,
			Delay:        stagger(i),
		}
	}
	return grid
}

func socialLinks(s models.Social) []SocialLink {
	var links []SocialLink
	if s.Twitter != "" {
		handle := strings.Replace(s.Twitter, "@", "", 1)
		links = append(links, SocialLink{Kind: "twitter", Title: "Twitter/X", Href: "https://twitter.com/" + handle})
	}
	if s.GitHub != "" {
		links = append(links, SocialLink{Kind: "github", Title: "GitHub", Href: s.GitHub})
	}
	if s.Sessionize != "" {
		links = append(links, SocialLink{Kind: "sessionize", Title: "Speaker Profile", Href: s.Sessionize})
	}
	return links
}
