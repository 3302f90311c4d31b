// Package videoconfig reads and writes the generated video configuration,
// a JavaScript file binding the video sequence to a global named videoConfig.
package videoconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"

	"tutorial-landing/pkg/models"
)

// Header lines describing how an artifact was produced.
const (
	HeaderOEmbed  = "Generated automatically from YouTube URLs"
	HeaderDataAPI = "Generated automatically from YouTube URLs using YouTube Data API v3"
)

const binding = "const videoConfig = "

const footer = `;

// Export for use in other scripts
if (typeof module !== 'undefined' && module.exports) {
    module.exports = videoConfig;
}
`

// ErrNoBinding is returned by Parse when the input does not declare videoConfig.
var ErrNoBinding = errors.New("videoconfig: no videoConfig binding found")

// Marshal renders videos as a configuration artifact. The output is a pure
// function of its inputs; a nil slice is written as an empty array.
func Marshal(videos []models.Video, header string) ([]byte, error) {
	if videos == nil {
		videos = []models.Video{}
	}

	var literal bytes.Buffer
	enc := json.NewEncoder(&literal)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(videos); err != nil {
		return nil, fmt.Errorf("encode videos: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("// Video Configuration\n")
	buf.WriteString("// " + header + "\n")
	buf.WriteString("// Add your YouTube video IDs and details here\n")
	buf.WriteString(binding)
	buf.Write(bytes.TrimRight(literal.Bytes(), "\n"))
	buf.WriteString(footer)
	return buf.Bytes(), nil
}

// Parse extracts the video sequence from an artifact produced by Marshal.
func Parse(r io.Reader) ([]models.Video, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read video config: %w", err)
	}

	idx := bytes.Index(data, []byte(binding))
	if idx < 0 {
		return nil, ErrNoBinding
	}

	var videos []models.Video
	dec := json.NewDecoder(bytes.NewReader(data[idx+len(binding):]))
	if err := dec.Decode(&videos); err != nil {
		return nil, fmt.Errorf("decode videoConfig literal: %w", err)
	}
	if videos == nil {
		videos = []models.Video{}
	}
	return videos, nil
}

// WriteFile atomically replaces path with the artifact for videos.
func WriteFile(path string, videos []models.Video, header string) error {
	data, err := Marshal(videos, header)
	if err != nil {
		return err
	}

	t, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() { _ = t.Cleanup() }()

	if _, err := t.Write(data); err != nil {
		return fmt.Errorf("write video config: %w", err)
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace video config: %w", err)
	}
	return nil
}

// ReadFile loads the artifact stored at path.
func ReadFile(path string) ([]models.Video, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
