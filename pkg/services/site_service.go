package services

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"tutorial-landing/pkg/config"
	"tutorial-landing/pkg/content"
	"tutorial-landing/pkg/models"
)

const contentKey = "content"

// Service serves the page content, reloading it from disk when the cached copy expires
type Service struct {
	config       *config.Config
	contentCache *cache.Cache
	enricher     *Enricher
	logger       zerolog.Logger
	mu           sync.RWMutex
}

// NewService creates a service reading the files named in cfg. The enricher is optional.
func NewService(cfg *config.Config, enricher *Enricher, logger zerolog.Logger) *Service {
	return &Service{
		config:       cfg,
		contentCache: cache.New(5*time.Minute, 10*time.Minute),
		enricher:     enricher,
		logger:       logger,
	}
}

// Content returns the current page content
func (s *Service) Content() (*content.Content, error) {
	s.mu.RLock()
	if cached, found := s.contentCache.Get(contentKey); found {
		s.mu.RUnlock()
		s.logger.Debug().Msg("using cached content")
		return cached.(*content.Content), nil
	}
	s.mu.RUnlock()

	s.logger.Debug().Str("site", s.config.SiteConfig).Str("videos", s.config.VideoConfig).Msg("loading content")

	c, err := content.Load(s.config.SiteConfig, s.config.VideoConfig, s.logger)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.contentCache.Set(contentKey, c, cache.DefaultExpiration)
	s.mu.Unlock()

	return c, nil
}

// PageContent returns the content with enrichment results applied to its videos
func (s *Service) PageContent() (*content.Content, error) {
	c, err := s.Content()
	if err != nil || s.enricher == nil || c.Videos == nil {
		return c, err
	}
	videos := make([]models.Video, len(c.Videos))
	for i, v := range c.Videos {
		videos[i] = s.enricher.Overlay(v)
	}
	return c.WithVideos(videos), nil
}

// Reload drops the cached content so the next call reads the files again
func (s *Service) Reload() {
	s.mu.Lock()
	s.contentCache.Delete(contentKey)
	s.mu.Unlock()
}

// GetVideos returns the video sequence in display order
func (s *Service) GetVideos() ([]models.Video, error) {
	c, err := s.Content()
	if err != nil {
		return nil, err
	}
	return c.Videos, nil
}

// GetVideo returns a video by its id, overlaid with enrichment results when available
func (s *Service) GetVideo(id string) (models.Video, error) {
	c, err := s.Content()
	if err != nil {
		return models.Video{}, err
	}
	v, ok := c.Video(id)
	if !ok {
		return models.Video{}, &NotFoundError{Kind: "video", Key: id}
	}
	if s.enricher != nil {
		v = s.enricher.Overlay(v)
	}
	return v, nil
}

// GetEvents returns the listed events
func (s *Service) GetEvents() ([]models.Event, error) {
	c, err := s.Content()
	if err != nil {
		return nil, err
	}
	return c.Events, nil
}

// GetExperts returns the listed experts
func (s *Service) GetExperts() ([]models.Expert, error) {
	c, err := s.Content()
	if err != nil {
		return nil, err
	}
	return c.Experts, nil
}

// GetExpert returns an expert by name
func (s *Service) GetExpert(name string) (models.Expert, error) {
	c, err := s.Content()
	if err != nil {
		return models.Expert{}, err
	}
	e, ok := c.Expert(name)
	if !ok {
		return models.Expert{}, &NotFoundError{Kind: "expert", Key: name}
	}
	return e, nil
}

// NotFoundError is returned when a lookup matches nothing
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found: " + e.Key
}
