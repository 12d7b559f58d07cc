package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/me-learn/tracker/internal/catalog"
)

// CatalogStore owns the course catalog snapshot: the canonical course list
// plus the per-course progress fields persisted for the local user.
type CatalogStore struct {
	snap      SnapshotStore
	canonical []catalog.Course
}

// NewCatalogStore creates a catalog store over the given snapshot backend.
// A nil or empty canonical list falls back to the built-in defaults.
func NewCatalogStore(snap SnapshotStore, canonical []catalog.Course) *CatalogStore {
	if len(canonical) == 0 {
		canonical = catalog.Defaults()
	}
	return &CatalogStore{
		snap:      snap,
		canonical: canonical,
	}
}

// Load returns the current catalog. With no persisted snapshot it persists
// and returns a copy of the canonical catalog; with one it merges persisted
// progress into canonical content. An unreadable snapshot degrades to the
// canonical defaults with a warning, never an error.
func (s *CatalogStore) Load(ctx context.Context) ([]catalog.Course, error) {
	raw, ok, err := s.snap.Get(ctx, KeyCourses)
	if err != nil {
		return nil, fmt.Errorf("read catalog snapshot: %w", err)
	}

	if !ok {
		fresh := catalog.Clone(s.canonical)
		if err := s.Save(ctx, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	merged, err := s.merge(raw)
	if err != nil {
		slog.Warn("catalog snapshot unreadable, using canonical defaults", "error", err)
		return catalog.Clone(s.canonical), nil
	}
	return merged, nil
}

// merge reconciles a persisted snapshot with the canonical catalog. Content
// fields always come from canonical (so content updates win across versions),
// progress fields come from the persisted entry with the same id. Persisted
// courses unknown to the canonical catalog are dropped; canonical courses
// missing from the snapshot start fresh. The result keeps canonical order.
func (s *CatalogStore) merge(raw []byte) ([]catalog.Course, error) {
	if err := validateSnapshot(coursesSchema, raw); err != nil {
		return nil, err
	}

	var persisted []catalog.Course
	if err := json.Unmarshal(raw, &persisted); err != nil {
		return nil, fmt.Errorf("decode catalog snapshot: %w", err)
	}

	byID := make(map[int]catalog.Course, len(persisted))
	for _, c := range persisted {
		byID[c.ID] = c
	}

	merged := make([]catalog.Course, 0, len(s.canonical))
	for _, def := range s.canonical {
		course := def.Clone()
		if prev, ok := byID[def.ID]; ok {
			course.Progress = clamp(prev.Progress, 0, 100)
			course.QuizScore = clamp(prev.QuizScore, 0, len(course.Quizzes))
			course.Completed = prev.Completed && IsComplete(course.Progress)
		}
		merged = append(merged, course)
	}
	return merged, nil
}

// Save persists the full catalog snapshot, overwriting the previous one.
func (s *CatalogStore) Save(ctx context.Context, courses []catalog.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}
	if err := s.snap.Put(ctx, KeyCourses, data); err != nil {
		return fmt.Errorf("write catalog snapshot: %w", err)
	}
	return nil
}
