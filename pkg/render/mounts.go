package render

// Section names a logical part of the page that receives projected content.
type Section string

// Sections of the landing page.
const (
	SectionVideos  Section = "videos"
	SectionEvents  Section = "events"
	SectionExperts Section = "experts"
	SectionModal   Section = "modal"
)

// Mount is the element a section is rendered into. Frame is only used by the
// modal and names its player frame.
type Mount struct {
	ID    string
	Frame string
}

// Mounts maps sections to their elements.
type Mounts map[Section]Mount

// DefaultMounts returns the element ids used by views/index.pug.
func DefaultMounts() Mounts {
	return Mounts{
		SectionVideos:  {ID: "videoGrid"},
		SectionEvents:  {ID: "eventsGrid"},
		SectionExperts: {ID: "expertsGrid"},
		SectionModal:   {ID: "videoModal", Frame: "modalIframe"},
	}
}

// Lookup returns the mount of a section.
func (m Mounts) Lookup(s Section) (Mount, bool) {
	mount, ok := m[s]
	if !ok || mount.ID == "" {
		return Mount{}, false
	}
	return mount, true
}
