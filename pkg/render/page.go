package render

import (
	"github.com/rs/zerolog"

	"tutorial-landing/pkg/config"
	"tutorial-landing/pkg/content"
	"tutorial-landing/pkg/models"
)

// State is the request scoped UI state: which video view is shown and which
// video, if any, is playing. It is never persisted.
type State struct {
	ShowAll bool
	Playing string
}

// VideoSection is the video grid with its heading.
type VideoSection struct {
	Mount   Mount
	Heading models.Section
	Grid    VideoGrid
}

// EventSection is the events grid with its heading.
type EventSection struct {
	Mount   Mount
	Heading models.Section
	Grid    EventGrid
}

// ExpertSection is the experts grid with its heading.
type ExpertSection struct {
	Mount   Mount
	Heading models.Section
	Grid    ExpertGrid
}

// ModalSection is the player overlay.
type ModalSection struct {
	Mount     Mount
	Modal     Modal
	CloseHref string
}

// Page is the complete view model of the landing page.
type Page struct {
	Site    models.Site
	Videos  VideoSection
	Events  EventSection
	Experts ExpertSection
	Modal   ModalSection
	State   State
}

// Builder projects content into pages.
type Builder struct {
	Mounts   Mounts
	Routes   Routes
	Featured int
	BioLimit int
	Logger   zerolog.Logger
}

// NewBuilder returns a builder with the default mounts and limits.
func NewBuilder(routes Routes, logger zerolog.Logger) *Builder {
	return &Builder{
		Mounts:   DefaultMounts(),
		Routes:   routes,
		Featured: config.FeaturedVideos,
		BioLimit: config.BioLimit,
		Logger:   logger,
	}
}

// BuildPage projects c with the default builder settings and server routes.
func BuildPage(c *content.Content, mounts Mounts, state State, logger zerolog.Logger) Page {
	b := NewBuilder(ServerRoutes, logger)
	b.Mounts = mounts
	return b.Build(c, state)
}

// Build projects every section of the page. A section whose mount or collection
// is missing is logged and left empty; building never fails.
func (b *Builder) Build(c *content.Content, state State) Page {
	page := Page{State: state}
	if c == nil {
		c = &content.Content{}
	}
	if c.Site != nil {
		page.Site = *c.Site
	}

	var ok bool

	page.Videos.Heading = page.Site.Videos
	if page.Videos.Mount, ok = b.mount(SectionVideos, c.Videos != nil); ok {
		page.Videos.Grid = ProjectVideos(c.Videos, b.Featured, state.ShowAll).withRoutes(b.Routes)
	}

	page.Events.Heading = page.Site.Events
	if page.Events.Mount, ok = b.mount(SectionEvents, c.Events != nil); ok {
		page.Events.Grid = ProjectEvents(c.Events)
	}

	if block := page.Site.MeetExperts; block != nil {
		page.Experts.Heading = models.Section{Title: block.Title, Subtitle: block.Subtitle}
	}
	if page.Experts.Mount, ok = b.mount(SectionExperts, c.Experts != nil); ok {
		page.Experts.Grid = ProjectExperts(c.Experts, b.BioLimit)
	}

	if mount, ok := b.Mounts.Lookup(SectionModal); ok {
		page.Modal = ModalSection{Mount: mount, CloseHref: b.Routes.CloseHref(state.ShowAll)}
		if state.Playing != "" {
			if v, found := c.Video(state.Playing); found {
				page.Modal.Modal.Open(PlayActionFor(v))
			} else {
				b.Logger.Warn().Str("video_id", state.Playing).Msg("requested video not in config, player left closed")
			}
		}
	} else {
		b.Logger.Warn().Str("section", string(SectionModal)).Msg("mount not found, player disabled")
	}

	return page
}

func (b *Builder) mount(s Section, haveData bool) (Mount, bool) {
	mount, ok := b.Mounts.Lookup(s)
	if !ok {
		b.Logger.Warn().Str("section", string(s)).Msg("mount not found, section left empty")
		return Mount{}, false
	}
	if !haveData {
		b.Logger.Warn().Str("section", string(s)).Msg("no data for section, section left empty")
		return mount, false
	}
	return mount, true
}
