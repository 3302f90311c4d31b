package content

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorial-landing/pkg/models"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata/site.yaml", "testdata/config.js", zerolog.Nop())
	require.NoError(t, err)

	require.NotNil(t, c.Site)
	assert.Equal(t, "Test Landing", c.Site.Meta.Title)
	assert.Equal(t, "Featured Tutorials", c.Site.Videos.Title)

	require.Len(t, c.Events, 2)
	assert.Equal(t, "ExampleConf", c.Events[0].Name)
	assert.Equal(t, "https://example.com", c.Events[0].Link)
	assert.Empty(t, c.Events[1].Link)

	require.Len(t, c.Experts, 1)
	assert.Equal(t, "@ada", c.Experts[0].Social.Twitter)

	require.Len(t, c.Videos, 2)
	assert.True(t, c.Videos[0].IsNew)
	assert.False(t, c.Videos[1].IsNew)
}

func TestLoadMissingFilesWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "site.yaml"), filepath.Join(dir, "config.js"), logger)
	require.NoError(t, err)

	assert.Nil(t, c.Site)
	assert.Nil(t, c.Events)
	assert.Nil(t, c.Experts)
	assert.Nil(t, c.Videos)
	assert.Contains(t, buf.String(), "site file not found")
	assert.Contains(t, buf.String(), "video config not found")
}

func TestLoadMalformedSite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: [unterminated"), 0o644))

	_, err := Load(path, "testdata/config.js", zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadEmptySiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	c, err := Load(path, "testdata/config.js", zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, c.Site)
	assert.Nil(t, c.Events)
	assert.Len(t, c.Videos, 2)
}

func TestLoadRepositorySiteFile(t *testing.T) {
	c, err := Load("../../site.yaml", "testdata/config.js", zerolog.Nop())
	require.NoError(t, err)

	require.NotNil(t, c.Site)
	require.NotNil(t, c.Site.MeetExperts)
	assert.NotEmpty(t, c.Experts)
	assert.NotEmpty(t, c.Events)
}

func TestLookups(t *testing.T) {
	c := &Content{
		Videos:  []models.Video{{ID: "a", Title: "first"}, {ID: "a", Title: "dup"}, {ID: "b"}},
		Experts: []models.Expert{{Name: "Ada"}},
	}

	v, ok := c.Video("a")
	require.True(t, ok)
	assert.Equal(t, "first", v.Title)

	_, ok = c.Video("zzz")
	assert.False(t, ok)

	_, ok = c.Expert("Ada")
	assert.True(t, ok)
	_, ok = c.Expert("Bob")
	assert.False(t, ok)
}

func TestWithVideosCopies(t *testing.T) {
	c := &Content{Videos: []models.Video{{ID: "a"}}}
	other := c.WithVideos([]models.Video{{ID: "b"}})

	assert.Equal(t, "a", c.Videos[0].ID)
	assert.Equal(t, "b", other.Videos[0].ID)
}
