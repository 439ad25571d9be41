package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// ExternalSource retrieves the third-party exercise database. The fetch is
// the pipeline's single boundary operation: one HTTP GET with a timeout,
// falling back to the local cache file when the network is unavailable. Only
// the total absence of usable data aborts a run.
type ExternalSource struct {
	url       string
	cachePath string
	client    *http.Client
	log       zerolog.Logger
}

// NewExternalSource creates a source for the given URL and cache location.
func NewExternalSource(url, cachePath string, timeout time.Duration, log zerolog.Logger) *ExternalSource {
	return &ExternalSource{
		url:       url,
		cachePath: cachePath,
		client:    &http.Client{Timeout: timeout},
		log:       log,
	}
}

// Load returns the external exercise catalog. With offline set, only the
// cache is consulted. Otherwise a fetch is attempted first; success
// refreshes the cache, failure falls back to it.
func (s *ExternalSource) Load(ctx context.Context, offline bool) ([]ExternalExercise, error) {
	if offline {
		exercises, err := s.readCache()
		if err != nil {
			return nil, fmt.Errorf("offline mode with no usable cache: %w", err)
		}
		return exercises, nil
	}

	exercises, err := s.fetch(ctx)
	if err == nil {
		s.writeCache(exercises)
		return exercises, nil
	}
	s.log.Warn().Err(err).Str("url", s.url).Msg("fetch failed, falling back to cache")

	exercises, cacheErr := s.readCache()
	if cacheErr != nil {
		return nil, fmt.Errorf("external database unavailable: fetch failed (%v) and no usable cache: %w", err, cacheErr)
	}
	return exercises, nil
}

func (s *ExternalSource) fetch(ctx context.Context) ([]ExternalExercise, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch external database: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch external database: unexpected status %d", resp.StatusCode)
	}

	var exercises []ExternalExercise
	if err := json.NewDecoder(resp.Body).Decode(&exercises); err != nil {
		return nil, fmt.Errorf("decode external database: %w", err)
	}

	s.log.Info().Int("count", len(exercises)).Msg("fetched external exercise database")
	return exercises, nil
}

func (s *ExternalSource) readCache() ([]ExternalExercise, error) {
	data, err := os.ReadFile(s.cachePath)
	if err != nil {
		return nil, fmt.Errorf("read cache %s: %w", s.cachePath, err)
	}
	var exercises []ExternalExercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", s.cachePath, err)
	}
	s.log.Info().Int("count", len(exercises)).Str("path", s.cachePath).Msg("loaded external database from cache")
	return exercises, nil
}

// writeCache refreshes the local copy. Failures are logged, not fatal: the
// run already has its data.
func (s *ExternalSource) writeCache(exercises []ExternalExercise) {
	if s.cachePath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.cachePath), 0o755); err != nil {
		s.log.Warn().Err(err).Msg("cache dir create failed")
		return
	}
	data, err := json.Marshal(exercises)
	if err != nil {
		s.log.Warn().Err(err).Msg("cache encode failed")
		return
	}
	tmp := s.cachePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.log.Warn().Err(err).Msg("cache write failed")
		return
	}
	if err := os.Rename(tmp, s.cachePath); err != nil {
		s.log.Warn().Err(err).Msg("cache rename failed")
	}
}
