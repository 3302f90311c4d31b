package models

// Site holds all of the hand-authored copy of the landing page
type Site struct {
	Meta        Meta          `yaml:"meta"`
	Nav         Nav           `yaml:"nav"`
	Hero        Hero          `yaml:"hero"`
	Videos      Section       `yaml:"videos"`
	Events      Section       `yaml:"events"`
	WhyAI       *WhyAI        `yaml:"whyAI,omitempty"`
	About       About         `yaml:"about"`
	MeetExperts *ExpertsBlock `yaml:"meetExperts,omitempty"`
	Footer      Footer        `yaml:"footer"`
}

// Meta holds the document metadata
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	Author      string `yaml:"author"`
	URL         string `yaml:"url"`
}

// Link is a text/href pair
type Link struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
}

// Nav is the top navigation bar
type Nav struct {
	Brand string `yaml:"brand"`
	Links []Link `yaml:"links"`
}

// CodeSnippet is the decorative code block in the hero section
type CodeSnippet struct {
	Comment string   `yaml:"comment"`
	Lines   []string `yaml:"lines"`
}

// Hero is the top banner of the page
type Hero struct {
	Title           string       `yaml:"title"`
	TitleHighlight  string       `yaml:"titleHighlight"`
	Subtitle        string       `yaml:"subtitle"`
	Description     string       `yaml:"description"`
	PrimaryButton   Link         `yaml:"primaryButton"`
	SecondaryButton Link         `yaml:"secondaryButton"`
	CodeSnippet     *CodeSnippet `yaml:"codeSnippet,omitempty"`
}

// Section is a heading and subtitle pair
type Section struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Stat is a highlighted number with a caption
type Stat struct {
	Stat        string `yaml:"stat"`
	Description string `yaml:"description"`
}

// WhyAI is the statistics section
type WhyAI struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Content  []Stat `yaml:"content"`
	Callout  string `yaml:"callout"`
}

// Feature is a card in the about section
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// NumberLabel is a stat in the about section
type NumberLabel struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

// About is the features section
type About struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Features []Feature     `yaml:"features"`
	Stats    []NumberLabel `yaml:"stats"`
}

// ExpertsBlock is the speakers section with its roster
type ExpertsBlock struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Experts  []Expert `yaml:"experts"`
}

// FooterSection is a titled column of footer links
type FooterSection struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

// Footer is the bottom of the page
type Footer struct {
	Brand struct {
		Name    string `yaml:"name"`
		Tagline string `yaml:"tagline"`
	} `yaml:"brand"`
	Sections  []FooterSection `yaml:"sections"`
	Copyright string          `yaml:"copyright"`
	BuiltWith string          `yaml:"builtWith"`
}
