// Package tracker implements the learning tracker core: the course catalog
// and user profile stores, the scoring rules, and the engine that applies
// user actions to both.
package tracker

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/me-learn/tracker/internal/catalog"
)

// QuizResult reports the outcome of a quiz submission.
type QuizResult struct {
	CorrectCount   int  `json:"correctCount"`
	Points         int  `json:"points"`
	NewlyCompleted bool `json:"newlyCompleted"`
}

// EngineConfig holds dependencies for the tracker engine.
type EngineConfig struct {
	Catalog *CatalogStore
	Profile *ProfileStore
	Events  EventLogger
	Now     func() time.Time // defaults to time.Now
}

// Engine coordinates user actions across the catalog and profile stores.
// Operations are serialized: there is one local user and every transition
// runs to completion before the next starts.
type Engine struct {
	mu      sync.Mutex
	catalog *CatalogStore
	profile *ProfileStore
	events  EventLogger
	now     func() time.Time
}

// NewEngine creates a tracker engine. Missing stores default to memory-backed
// ones, missing Events to a no-op logger.
func NewEngine(cfg EngineConfig) *Engine {
	cat := cfg.Catalog
	if cat == nil {
		cat = NewCatalogStore(NewMemoryStore(), nil)
	}
	prof := cfg.Profile
	if prof == nil {
		prof = NewProfileStore(NewMemoryStore())
	}
	events := cfg.Events
	if events == nil {
		events = NopEventLogger{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		catalog: cat,
		profile: prof,
		events:  events,
		now:     now,
	}
}

// Courses returns the current catalog.
func (e *Engine) Courses(ctx context.Context) ([]catalog.Course, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Load(ctx)
}

// Profile returns the current user profile.
func (e *Engine) Profile(ctx context.Context) (Profile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.Load(ctx)
}

// Login sets the local user's name. The name is NFC-normalized and trimmed;
// fewer than 3 remaining runes is a validation error.
func (e *Engine) Login(ctx context.Context, username string) error {
	name := strings.TrimSpace(norm.NFC.String(username))
	if utf8.RuneCountInString(name) < 3 {
		return validationErrorf("username must be at least 3 characters")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	profile, err := e.profile.Load(ctx)
	if err != nil {
		return err
	}
	profile.Username = name
	if err := e.profile.Save(ctx, profile); err != nil {
		return err
	}

	e.emit(EventLogin, map[string]any{"username": name})
	return nil
}

// ViewLesson records one lesson view: progress rises by the flat increment
// and the catalog is persisted. It never completes a course and never touches
// the profile. Unknown course ids or lesson indexes are logged no-ops.
func (e *Engine) ViewLesson(ctx context.Context, courseID, lessonIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	courses, err := e.catalog.Load(ctx)
	if err != nil {
		return err
	}

	course, ok := catalog.FindByID(courses, courseID)
	if !ok {
		slog.Warn("view lesson on unknown course", "course_id", courseID)
		return nil
	}
	if lessonIndex < 0 || lessonIndex >= len(course.Lessons) {
		slog.Warn("view lesson with out-of-range index",
			"course_id", courseID,
			"lesson_index", lessonIndex,
			"lessons", len(course.Lessons),
		)
		return nil
	}

	course.Progress = LessonViewIncrement(course.Progress)
	return e.catalog.Save(ctx, courses)
}

// SubmitQuiz grades a full answer set for a course. One answer per question
// is required; a nil answer or an option index outside the question's options
// rejects the whole submission with no mutation. A valid submission advances
// the streak, awards points, and fully overwrites the course's quizScore,
// progress and completed flag — re-submission replaces, never accumulates.
func (e *Engine) SubmitQuiz(ctx context.Context, courseID int, answers []*int) (QuizResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	courses, err := e.catalog.Load(ctx)
	if err != nil {
		return QuizResult{}, err
	}

	course, ok := catalog.FindByID(courses, courseID)
	if !ok {
		slog.Warn("quiz submitted for unknown course", "course_id", courseID)
		return QuizResult{}, nil
	}

	if len(answers) != len(course.Quizzes) {
		return QuizResult{}, validationErrorf("expected %d answers, got %d", len(course.Quizzes), len(answers))
	}
	for i, a := range answers {
		if a == nil {
			return QuizResult{}, validationErrorf("question %d is unanswered", i+1)
		}
		if *a < 0 || *a >= len(course.Quizzes[i].Options) {
			return QuizResult{}, validationErrorf("question %d has no option %d", i+1, *a)
		}
	}

	profile, err := e.profile.Load(ctx)
	if err != nil {
		return QuizResult{}, err
	}
	profile.Streak, profile.LastActivity = StreakTransition(profile.Streak, profile.LastActivity, e.today())

	correct := 0
	for i, q := range course.Quizzes {
		if *answers[i] == q.CorrectIndex {
			correct++
		}
	}

	points := QuizPoints(correct, profile.Streak)
	e.awardPoints(&profile, points)

	course.QuizScore = correct
	course.Progress = ProgressFromQuiz(correct, len(course.Quizzes))
	wasCompleted := course.Completed
	course.Completed = IsComplete(course.Progress)

	newlyCompleted := course.Completed && !wasCompleted
	if newlyCompleted {
		e.unlockBadge(&profile, course.Badge)
		e.emit(EventCourseCompleted, map[string]any{"course_id": course.ID, "title": course.Title})
	}

	if err := e.catalog.Save(ctx, courses); err != nil {
		return QuizResult{}, err
	}
	if err := e.profile.Save(ctx, profile); err != nil {
		return QuizResult{}, err
	}

	e.emit(EventQuizSubmitted, map[string]any{
		"course_id": course.ID,
		"correct":   correct,
		"total":     len(course.Quizzes),
		"points":    points,
	})

	return QuizResult{
		CorrectCount:   correct,
		Points:         points,
		NewlyCompleted: newlyCompleted,
	}, nil
}

// ManualComplete marks an eligible course (progress >= 70, not yet completed)
// as completed, awarding points proportional to its progress. Anything else
// is a silent no-op returning false; the presentation layer is expected to
// disable the action in those states.
func (e *Engine) ManualComplete(ctx context.Context, courseID int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	courses, err := e.catalog.Load(ctx)
	if err != nil {
		return false, err
	}

	course, ok := catalog.FindByID(courses, courseID)
	if !ok {
		slog.Warn("manual complete on unknown course", "course_id", courseID)
		return false, nil
	}
	if !IsComplete(course.Progress) || course.Completed {
		return false, nil
	}

	profile, err := e.profile.Load(ctx)
	if err != nil {
		return false, err
	}

	course.Completed = true
	points := int(math.Round(float64(course.PointsAwarded) * float64(course.Progress) / 100))
	e.awardPoints(&profile, points)
	e.unlockBadge(&profile, course.Badge)
	e.emit(EventCourseCompleted, map[string]any{"course_id": course.ID, "title": course.Title})

	if err := e.catalog.Save(ctx, courses); err != nil {
		return false, err
	}
	if err := e.profile.Save(ctx, profile); err != nil {
		return false, err
	}
	return true, nil
}

// awardPoints adds points to the profile and recomputes the level. Zero or
// negative awards are ignored. The caller persists the profile.
func (e *Engine) awardPoints(profile *Profile, points int) {
	if points <= 0 {
		return
	}
	prevLevel := profile.Level
	profile.TotalPoints += points
	profile.Level = LevelFor(profile.TotalPoints)

	e.emit(EventPointsAwarded, map[string]any{"points": points, "total": profile.TotalPoints})
	if profile.Level > prevLevel {
		e.emit(EventLevelUp, map[string]any{"level": profile.Level})
	}
}

// unlockBadge appends a badge unless it is empty or already held. The caller
// persists the profile.
func (e *Engine) unlockBadge(profile *Profile, name string) {
	if name == "" || profile.HasBadge(name) {
		return
	}
	profile.Badges = append(profile.Badges, name)
	e.emit(EventBadgeEarned, map[string]any{"badge": name})
}

func (e *Engine) today() string {
	return e.now().UTC().Format(time.DateOnly)
}

func (e *Engine) emit(eventType string, data map[string]any) {
	err := e.events.LogEvent(Event{
		Type:      eventType,
		Data:      data,
		CreatedAt: e.now(),
	})
	if err != nil {
		slog.Warn("failed to log event", "type", eventType, "error", err)
	}
}
