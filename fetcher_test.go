package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCache(t *testing.T, dir string, exercises []ExternalExercise) string {
	t.Helper()
	path := filepath.Join(dir, "exercises.json")
	data, err := json.Marshal(exercises)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFetchesAndRefreshesCache(t *testing.T) {
	upstream := []ExternalExercise{{ID: "A", Name: "Barbell_Squat", Category: "strength"}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(upstream))
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "exercises.json")
	src := NewExternalSource(server.URL, cachePath, 5*time.Second, zerolog.Nop())

	exercises, err := src.Load(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "A", exercises[0].ID)

	data, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	var cached []ExternalExercise
	require.NoError(t, json.Unmarshal(data, &cached))
	assert.Equal(t, exercises, cached)
}

func TestLoadFallsBackToCacheOnFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cached := []ExternalExercise{{ID: "C", Name: "Deadlift"}}
	cachePath := writeTestCache(t, t.TempDir(), cached)
	src := NewExternalSource(server.URL, cachePath, 5*time.Second, zerolog.Nop())

	exercises, err := src.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, cached, exercises)
}

func TestLoadFailsWhenFetchAndCacheBothUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	src := NewExternalSource(server.URL, filepath.Join(t.TempDir(), "missing.json"), 5*time.Second, zerolog.Nop())

	_, err := src.Load(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "external database unavailable")
}

func TestLoadOfflineUsesOnlyCache(t *testing.T) {
	// No server at all: offline must never touch the network.
	cached := []ExternalExercise{{ID: "O", Name: "Pullups"}}
	cachePath := writeTestCache(t, t.TempDir(), cached)
	src := NewExternalSource("http://127.0.0.1:0/unreachable", cachePath, time.Second, zerolog.Nop())

	exercises, err := src.Load(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, cached, exercises)
}

func TestLoadOfflineWithoutCacheFails(t *testing.T) {
	src := NewExternalSource("http://127.0.0.1:0/unreachable", filepath.Join(t.TempDir(), "missing.json"), time.Second, zerolog.Nop())

	_, err := src.Load(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline mode with no usable cache")
}

func TestLoadRejectsMalformedCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exercises.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	src := NewExternalSource("http://127.0.0.1:0/unreachable", path, time.Second, zerolog.Nop())

	_, err := src.Load(context.Background(), true)
	require.Error(t, err)
}
