package main

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	meilisearch "github.com/meilisearch/meilisearch-go"
	"github.com/rs/zerolog"
)

const exerciseIndexName = "exercises"

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// SearchIndexer pushes the reconciled catalog into Meilisearch so the app's
// exercise picker can search it.
type SearchIndexer struct {
	client meilisearch.ServiceManager
	log    zerolog.Logger
}

// NewSearchIndexer creates an indexer against the given Meilisearch instance.
func NewSearchIndexer(url, apiKey string, log zerolog.Logger) *SearchIndexer {
	return &SearchIndexer{
		client: meilisearch.New(url, meilisearch.WithAPIKey(apiKey)),
		log:    log,
	}
}

// IndexCatalog recreates index settings and indexes all entries in batches.
func (x *SearchIndexer) IndexCatalog(entries []CatalogEntry) error {
	_, _ = x.client.CreateIndex(&meilisearch.IndexConfig{Uid: exerciseIndexName, PrimaryKey: "id"})
	index := x.client.Index(exerciseIndexName)

	if err := x.configureIndex(index); err != nil {
		return err
	}

	batch := 500
	indexed := 0
	for start := 0; start < len(entries); start += batch {
		end := start + batch
		if end > len(entries) {
			end = len(entries)
		}
		docs := make([]map[string]interface{}, 0, end-start)
		for _, e := range entries[start:end] {
			docs = append(docs, exerciseDocument(e))
		}
		if _, err := index.AddDocuments(docs, nil); err != nil {
			return fmt.Errorf("index batch: %w", err)
		}
		indexed += len(docs)
	}

	x.log.Info().Int("count", indexed).Msg("catalog indexed to meilisearch")
	return nil
}

// Search queries the exercise index.
func (x *SearchIndexer) Search(query string, limit int64) ([]map[string]interface{}, error) {
	res, err := x.client.Index(exerciseIndexName).Search(query, &meilisearch.SearchRequest{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}
	var hits []map[string]interface{}
	raw, err := json.Marshal(res.Hits)
	if err != nil {
		return nil, fmt.Errorf("decode search hits: %w", err)
	}
	if err := json.Unmarshal(raw, &hits); err != nil {
		return nil, fmt.Errorf("decode search hits: %w", err)
	}
	return hits, nil
}

func (x *SearchIndexer) configureIndex(index meilisearch.IndexManager) error {
	searchable := []string{"name", "muscleGroup", "equipmentClass", "category"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		return fmt.Errorf("update searchable attributes: %w", err)
	}

	filterable := []interface{}{"muscleGroup", "equipmentClass", "movementType", "provenance", "level"}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		return fmt.Errorf("update filterable attributes: %w", err)
	}

	sortable := []string{"name"}
	if _, err := index.UpdateSortableAttributes(&sortable); err != nil {
		return fmt.Errorf("update sortable attributes: %w", err)
	}
	return nil
}

func exerciseDocument(e CatalogEntry) map[string]interface{} {
	doc := map[string]interface{}{
		"id":             exerciseSlug(e.Name),
		"name":           e.Name,
		"muscleGroup":    string(e.MuscleGroup),
		"equipmentClass": string(e.EquipmentClass),
		"movementType":   string(e.MovementType),
		"provenance":     string(e.Provenance),
		"hasImages":      len(e.Images) > 0,
	}
	if e.Category != "" {
		doc["category"] = e.Category
	}
	if e.Level != "" {
		doc["level"] = e.Level
	}
	if e.Force != "" {
		doc["force"] = e.Force
	}
	return doc
}

// exerciseSlug derives a Meilisearch-safe document id from the entry name.
func exerciseSlug(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
