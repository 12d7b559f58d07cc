package tracker

import (
	"math"
	"time"
)

// Scoring rules. Everything in this file is a pure function of its inputs;
// nothing here touches storage.

// completionThreshold is the progress percentage at which a course counts as
// complete.
const completionThreshold = 70

// LevelFor derives the user's level from cumulative points.
func LevelFor(totalPoints int) int {
	return totalPoints/1000 + 1
}

// StreakTransition applies one streak-triggering action happening on the
// given day. Dates are YYYY-MM-DD strings; an empty lastActivity means no
// prior activity. Re-entry on the same day leaves the streak unchanged, the
// exact next day extends it, any other gap (including clock skew backwards)
// resets it to 1.
func StreakTransition(streak int, lastActivity, today string) (int, string) {
	if lastActivity == "" {
		return 1, today
	}
	if lastActivity == today {
		return streak, lastActivity
	}
	if daysBetween(lastActivity, today) == 1 {
		return streak + 1, today
	}
	return 1, today
}

// daysBetween returns the whole-day difference between two YYYY-MM-DD dates.
// Unparseable input counts as a broken streak.
func daysBetween(from, to string) int {
	a, errA := time.Parse(time.DateOnly, from)
	b, errB := time.Parse(time.DateOnly, to)
	if errA != nil || errB != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}

// QuizPoints computes the award for a quiz submission: 15 per correct answer
// plus a streak bonus of 3 per day, capped at 30.
func QuizPoints(correctCount, streak int) int {
	bonus := streak * 3
	if bonus > 30 {
		bonus = 30
	}
	return correctCount*15 + bonus
}

// ProgressFromQuiz converts a quiz result into a progress percentage.
func ProgressFromQuiz(correctCount, totalQuestions int) int {
	if totalQuestions <= 0 {
		return 0
	}
	return int(math.Round(float64(correctCount) / float64(totalQuestions) * 100))
}

// IsComplete reports whether a progress value qualifies the course as
// complete.
func IsComplete(progress int) bool {
	return progress >= completionThreshold
}

// LessonViewIncrement returns the progress after one lesson view: a flat +5,
// capped at 100, regardless of how many lessons the course has.
func LessonViewIncrement(currentProgress int) int {
	return clamp(currentProgress+5, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
