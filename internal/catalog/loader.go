// Package catalog defines course content and loads course packs from the
// filesystem. The built-in defaults act as the canonical catalog unless a
// course pack directory is configured.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader loads and caches course definitions from a directory of YAML files,
// one course per file.
type Loader struct {
	rootDir string
	courses map[int]Course
	mu      sync.RWMutex
}

// NewLoader creates a course pack loader and loads all courses under rootDir.
func NewLoader(rootDir string) (*Loader, error) {
	l := &Loader{
		rootDir: rootDir,
		courses: make(map[int]Course),
	}

	if err := l.loadAll(); err != nil {
		return nil, fmt.Errorf("loading course pack: %w", err)
	}

	slog.Info("course pack loaded", "dir", rootDir, "courses", len(l.courses))
	return l, nil
}

// Course returns a course by id.
func (l *Loader) Course(id int) (Course, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.courses[id]
	return c, ok
}

// Courses returns all loaded courses ordered by id.
func (l *Loader) Courses() []Course {
	l.mu.RLock()
	defer l.mu.RUnlock()
	courses := make([]Course, 0, len(l.courses))
	for _, c := range l.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].ID < courses[j].ID
	})
	return courses
}

func (l *Loader) loadAll() error {
	return filepath.Walk(l.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			return l.loadCourse(path)
		}
		return nil
	})
}

func (l *Loader) loadCourse(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var course Course
	if err := yaml.Unmarshal(data, &course); err != nil {
		slog.Warn("skipping invalid course YAML", "path", path, "error", err)
		return nil
	}

	if course.ID == 0 {
		return nil // Not a course file
	}

	l.mu.Lock()
	l.courses[course.ID] = course
	l.mu.Unlock()

	return nil
}
