package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Profile is the single local user's persisted state. An empty Username
// means no one is logged in; an empty LastActivity means no streak-triggering
// action has happened yet.
type Profile struct {
	Username     string   `json:"username,omitempty"`
	TotalPoints  int      `json:"totalPoints"`
	Level        int      `json:"level"`
	Streak       int      `json:"streak"`
	LastActivity string   `json:"lastActivity,omitempty"`
	Badges       []string `json:"badges"`
}

// NewProfile returns a fresh profile for a user with no history.
func NewProfile() Profile {
	return Profile{
		Level:  1,
		Badges: []string{},
	}
}

// HasBadge reports whether the profile already holds the named badge.
func (p Profile) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// ProfileStore owns the user profile snapshot.
type ProfileStore struct {
	snap SnapshotStore
}

// NewProfileStore creates a profile store over the given snapshot backend.
func NewProfileStore(snap SnapshotStore) *ProfileStore {
	return &ProfileStore{snap: snap}
}

// Load returns the persisted profile, or a fresh one when the snapshot is
// absent or unreadable. The level is always recomputed from totalPoints; a
// stored level is never trusted.
func (s *ProfileStore) Load(ctx context.Context) (Profile, error) {
	raw, ok, err := s.snap.Get(ctx, KeyProfile)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile snapshot: %w", err)
	}
	if !ok {
		return NewProfile(), nil
	}

	profile, err := decodeProfile(raw)
	if err != nil {
		slog.Warn("profile snapshot unreadable, starting fresh", "error", err)
		return NewProfile(), nil
	}
	return profile, nil
}

// Save persists the full profile snapshot, overwriting the previous one.
func (s *ProfileStore) Save(ctx context.Context, profile Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile snapshot: %w", err)
	}
	if err := s.snap.Put(ctx, KeyProfile, data); err != nil {
		return fmt.Errorf("write profile snapshot: %w", err)
	}
	return nil
}

func decodeProfile(raw []byte) (Profile, error) {
	if err := validateSnapshot(profileSchema, raw); err != nil {
		return Profile{}, err
	}

	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile snapshot: %w", err)
	}

	if profile.TotalPoints < 0 {
		profile.TotalPoints = 0
	}
	if profile.Streak < 0 {
		profile.Streak = 0
	}
	profile.Level = LevelFor(profile.TotalPoints)
	profile.Badges = dedupe(profile.Badges)
	return profile, nil
}

// dedupe removes duplicate badges, keeping the first occurrence of each.
func dedupe(badges []string) []string {
	seen := make(map[string]bool, len(badges))
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out
}
