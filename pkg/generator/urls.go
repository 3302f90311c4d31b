// Package generator turns a list of YouTube URLs into ordered video records.
package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"tutorial-landing/pkg/youtube"
)

var (
	// ErrInputUnreadable indicates the URL list could not be opened or read.
	ErrInputUnreadable = errors.New("input file unreadable")
	// ErrNoVideos indicates no video identifier could be extracted from the input.
	ErrNoVideos = errors.New("no valid YouTube URLs found")
)

// MaxLineLength bounds a single line of a URL list. Longer lines are skipped.
const MaxLineLength = 64 * 1024

// Source is one usable line of a URL list.
type Source struct {
	ID  string
	URL string
}

// ParseURLList reads one URL per line. Blank lines and lines starting with # are
// ignored; lines without a recognizable identifier or longer than MaxLineLength
// are skipped with a warning.
func ParseURLList(r io.Reader, logger zerolog.Logger) ([]Source, error) {
	var sources []Source

	reader := bufio.NewReaderSize(r, MaxLineLength)
	for lineNo := 1; ; lineNo++ {
		chunk, isPrefix, err := reader.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
		}
		if isPrefix {
			for isPrefix && err == nil {
				_, isPrefix, err = reader.ReadLine()
			}
			logger.Warn().Int("line", lineNo).Int("limit", MaxLineLength).Msg("line too long, skipping")
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
			}
			continue
		}

		line := strings.TrimSpace(string(chunk))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, ok := youtube.ExtractVideoID(line)
		if !ok {
			logger.Warn().Str("url", line).Msg("could not extract video ID, skipping")
			continue
		}
		sources = append(sources, Source{ID: id, URL: line})
	}

	return sources, nil
}

// ReadURLFile parses the URL list stored at path.
func ReadURLFile(path string, logger zerolog.Logger) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	defer f.Close()

	return ParseURLList(f, logger)
}

// SampleURLs is the content written by the --sample flag.
const SampleURLs = `# YouTube URLs for AI-Assisted Engineering
# Add one URL per line, comments start with #

# Example URLs (replace with your actual videos):
https://www.youtube.com/watch?v=dQw4w9WgXcQ
https://youtu.be/dQw4w9WgXcQ
https://www.youtube.com/watch?v=dQw4w9WgXcQ

# You can also add comments to organize your videos:
# GitHub Copilot tutorials:
https://www.youtube.com/watch?v=dQw4w9WgXcQ

# Windsurf IDE tutorials:
https://www.youtube.com/watch?v=dQw4w9WgXcQ
`

// WriteSample writes SampleURLs to path.
func WriteSample(path string) error {
	if err := os.WriteFile(path, []byte(SampleURLs), 0o644); err != nil {
		return fmt.Errorf("write sample file: %w", err)
	}
	return nil
}
