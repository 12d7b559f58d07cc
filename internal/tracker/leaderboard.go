package tracker

import (
	"context"
	"sort"
)

// LeaderboardEntry is one row of the leaderboard view.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	TotalPoints int    `json:"totalPoints"`
	Level       int    `json:"level"`
	Streak      int    `json:"streak"`
	You         bool   `json:"you,omitempty"`
}

// fixtureCompetitors are the static demo entries shown alongside the local
// user. Display data only, never persisted.
func fixtureCompetitors() []LeaderboardEntry {
	return []LeaderboardEntry{
		{Username: "Alice", TotalPoints: 2500, Level: 3, Streak: 14},
		{Username: "Bob", TotalPoints: 1800, Level: 2, Streak: 7},
		{Username: "Charlie", TotalPoints: 1200, Level: 2, Streak: 3},
	}
}

// Leaderboard combines the fixture competitors with the logged-in user,
// sorted descending by total points. Ties keep the fixture order (stable
// sort). Opening the leaderboard counts as activity, so it advances the
// streak and persists the profile.
func (e *Engine) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	profile, err := e.profile.Load(ctx)
	if err != nil {
		return nil, err
	}

	profile.Streak, profile.LastActivity = StreakTransition(profile.Streak, profile.LastActivity, e.today())
	if err := e.profile.Save(ctx, profile); err != nil {
		return nil, err
	}

	entries := fixtureCompetitors()
	if profile.Username != "" {
		entries = append(entries, LeaderboardEntry{
			Username:    profile.Username,
			TotalPoints: profile.TotalPoints,
			Level:       profile.Level,
			Streak:      profile.Streak,
			You:         true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
