package models

// Video is a single tutorial card as stored in the generated video config
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	IsNew       bool   `json:"isNew,omitempty"`
}

// Event represents a conference or meetup appearance
type Event struct {
	Name        string `json:"name" yaml:"name"`
	Flag        string `json:"flag" yaml:"flag"`
	DisplayDate string `json:"displayDate" yaml:"displayDate"`
	City        string `json:"city" yaml:"city"`
	Country     string `json:"country" yaml:"country"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Social holds the optional profile links of an expert
type Social struct {
	Twitter    string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	GitHub     string `json:"github,omitempty" yaml:"github,omitempty"`
	Sessionize string `json:"sessionize,omitempty" yaml:"sessionize,omitempty"`
}

// Expert represents a speaker bio. Bio is stored in full; it is shortened when rendered.
type Expert struct {
	Name         string   `json:"name" yaml:"name"`
	Title        string   `json:"title" yaml:"title"`
	Company      string   `json:"company" yaml:"company"`
	Location     string   `json:"location,omitempty" yaml:"location,omitempty"`
	Photo        string   `json:"photo,omitempty" yaml:"photo,omitempty"`
	Bio          string   `json:"bio" yaml:"bio"`
	Expertise    []string `json:"expertise,omitempty" yaml:"expertise,omitempty"`
	Achievements []string `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	Social       Social   `json:"social" yaml:"social"`
}
