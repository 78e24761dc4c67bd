// Package fs provides file-based storage for the scrape cache and the
// published feed artifacts.
package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
	"github.com/leblancfg/deprecations-rss/feed"
)

// Store persists the scrape cache (data.json) and renders the feed
// directory. Writes go to a temp file first and are moved into place with
// a rename, so a crash mid-write never leaves a truncated file behind.
type Store struct {
	// DataPath is the JSON cache of the last scrape, used for change
	// detection across runs.
	DataPath string

	// FeedDir receives feed.json, deprecations.json and rss.xml.
	FeedDir string
}

// NewStore creates a Store writing to the given cache path and feed directory.
func NewStore(dataPath, feedDir string) *Store {
	return &Store{DataPath: dataPath, FeedDir: feedDir}
}

// LoadItems reads the cached items from the previous run. A missing cache
// file is not an error: the first run starts from nothing.
func (s *Store) LoadItems() ([]deprecations.DeprecationItem, error) {
	data, err := os.ReadFile(s.DataPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []deprecations.DeprecationItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, deprecations.Errorf(deprecations.EINVALID, "parse %s: %v", s.DataPath, err)
	}
	return items, nil
}

// SaveItems writes the scrape cache.
func (s *Store) SaveItems(items []deprecations.DeprecationItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.DataPath, append(data, '\n'))
}

// WriteFeeds renders all published artifacts into FeedDir: the JSON Feed,
// the raw item array, and the RSS document.
func (s *Store) WriteFeeds(items []deprecations.DeprecationItem, now time.Time) error {
	jsonFeed, err := json.MarshalIndent(feed.BuildJSONFeed(items, now), "", "  ")
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(s.FeedDir, "feed.json"), append(jsonFeed, '\n')); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(s.FeedDir, "deprecations.json"), append(raw, '\n')); err != nil {
		return err
	}

	rss, err := feed.BuildRSS(items, now)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(s.FeedDir, "rss.xml"), []byte(rss))
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
