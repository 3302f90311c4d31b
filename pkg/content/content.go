// Package content loads everything the landing page displays: the hand-written
// site copy and events from YAML, and the generated video configuration.
package content

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"tutorial-landing/pkg/models"
	"tutorial-landing/pkg/videoconfig"
)

// Content is the immutable input of the page renderer. A nil collection means
// its source was not available, which is different from an empty one.
type Content struct {
	Site    *models.Site
	Events  []models.Event
	Experts []models.Expert
	Videos  []models.Video
}

type siteFile struct {
	Site   *models.Site   `yaml:"site"`
	Events []models.Event `yaml:"events"`
}

// Load reads the site file and the video artifact. Missing files are logged and
// leave the matching collections nil; malformed files are errors.
func Load(sitePath, videosPath string, logger zerolog.Logger) (*Content, error) {
	c := &Content{}

	sf, err := readSiteFile(sitePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn().Str("path", sitePath).Msg("site file not found, page copy will be empty")
	case err != nil:
		return nil, err
	default:
		c.Site = sf.Site
		c.Events = sf.Events
		if sf.Site != nil && sf.Site.MeetExperts != nil {
			c.Experts = sf.Site.MeetExperts.Experts
		}
	}

	videos, err := videoconfig.ReadFile(videosPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn().Str("path", videosPath).Msg("video config not found, run generate-config first")
	case err != nil:
		return nil, fmt.Errorf("load videos from %s: %w", videosPath, err)
	default:
		c.Videos = videos
	}

	logger.Debug().
		Int("videos", len(c.Videos)).
		Int("events", len(c.Events)).
		Int("experts", len(c.Experts)).
		Msg("content loaded")

	return c, nil
}

func readSiteFile(path string) (*siteFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decodeSite(f, path)
}

func decodeSite(r io.Reader, name string) (*siteFile, error) {
	var sf siteFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse site file %s: %w", name, err)
	}
	return &sf, nil
}

// Video returns the first video with the given identifier.
func (c *Content) Video(id string) (models.Video, bool) {
	for _, v := range c.Videos {
		if v.ID == id {
			return v, true
		}
	}
	return models.Video{}, false
}

// Expert returns the expert with the given name.
func (c *Content) Expert(name string) (models.Expert, bool) {
	for _, e := range c.Experts {
		if e.Name == name {
			return e, true
		}
	}
	return models.Expert{}, false
}

// WithVideos returns a copy of c using videos as its video sequence.
func (c *Content) WithVideos(videos []models.Video) *Content {
	cp := *c
	cp.Videos = videos
	return &cp
}
