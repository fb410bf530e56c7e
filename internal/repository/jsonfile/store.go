// Package jsonfile backs the repositories with a single JSON document that
// is read once at startup and rewritten after every mutation. There is no
// transaction log: a crash between mutate and save loses the in-memory
// delta, which is acceptable for a single-user tool with human-triggered
// writes.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/logger"
)

const retentionCap = 500

// document is the on-disk shape.
type document struct {
	Jobs      []domain.Job         `json:"jobs"`
	Profile   domain.UserProfile   `json:"profile"`
	Users     []domain.User        `json:"users"`
	Favorites []domain.FavoriteJob `json:"favorites"`
}

// Store owns the document and serializes all access behind one mutex; two
// overlapping writers would otherwise race on the whole-file rewrite.
type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// Open loads the document at path, falling back to empty defaults when the
// file is missing or corrupt.
func Open(path string) *Store {
	s := &Store{path: path}
	s.doc = defaultDocument()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("store load failed, starting empty", "path", path, "error", err)
		}
		return s
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Log.Warn("store file corrupt, starting empty", "path", path, "error", err)
		return s
	}
	if doc.Profile.ID == "" {
		doc.Profile = defaultDocument().Profile
	}
	s.doc = doc

	logger.Log.Info("store loaded", "path", path, "jobs", len(doc.Jobs), "favorites", len(doc.Favorites))
	return s
}

func defaultDocument() document {
	return document{
		Profile: domain.UserProfile{
			ID:                  "default",
			Skills:              []string{},
			PreferredCategories: []string{},
		},
	}
}

// save rewrites the whole file. Failures are logged, not retried: in-memory
// state runs ahead of disk until the next successful save.
func (s *Store) save() {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Log.Error("store mkdir failed", "dir", dir, "error", err)
			return
		}
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		logger.Log.Error("store marshal failed", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logger.Log.Error("store save failed", "path", s.path, "error", err)
	}
}

func sortByPostedDesc(jobs []domain.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Posted.After(jobs[j].Posted)
	})
}
