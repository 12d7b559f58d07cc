package tracker_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/me-learn/tracker/internal/tracker"
)

func TestProfileStore_FreshProfile(t *testing.T) {
	store := tracker.NewProfileStore(tracker.NewMemoryStore())

	profile, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if profile.Level != 1 {
		t.Errorf("Level = %d, want 1", profile.Level)
	}
	if profile.TotalPoints != 0 || profile.Streak != 0 {
		t.Errorf("TotalPoints/Streak = %d/%d, want 0/0", profile.TotalPoints, profile.Streak)
	}
	if profile.Badges == nil || len(profile.Badges) != 0 {
		t.Errorf("Badges = %v, want empty non-nil slice", profile.Badges)
	}
}

func TestProfileStore_RoundTrip(t *testing.T) {
	store := tracker.NewProfileStore(tracker.NewMemoryStore())
	ctx := context.Background()

	saved := tracker.Profile{
		Username:     "maría",
		TotalPoints:  2400,
		Level:        3,
		Streak:       5,
		LastActivity: "2025-03-10",
		Badges:       []string{"JS Starter"},
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}
}

func TestProfileStore_LevelRecomputedOnLoad(t *testing.T) {
	snap := tracker.NewMemoryStore()
	ctx := context.Background()

	// A tampered snapshot claiming a level the points do not justify.
	raw := `{"username":"sam","totalPoints":500,"level":9,"streak":1,"badges":[]}`
	if err := snap.Put(ctx, tracker.KeyProfile, []byte(raw)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	profile, err := tracker.NewProfileStore(snap).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if profile.Level != 1 {
		t.Errorf("Level = %d, want 1 recomputed from 500 points", profile.Level)
	}
}

func TestProfileStore_NegativesZeroedOnLoad(t *testing.T) {
	snap := tracker.NewMemoryStore()
	ctx := context.Background()

	raw := `{"totalPoints":-50,"level":1,"streak":-2,"badges":[]}`
	if err := snap.Put(ctx, tracker.KeyProfile, []byte(raw)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	profile, err := tracker.NewProfileStore(snap).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if profile.TotalPoints != 0 || profile.Streak != 0 {
		t.Errorf("TotalPoints/Streak = %d/%d, want zeroed", profile.TotalPoints, profile.Streak)
	}
}

func TestProfileStore_BadgesDeduped(t *testing.T) {
	snap := tracker.NewMemoryStore()
	ctx := context.Background()

	raw := `{"totalPoints":0,"level":1,"streak":0,"badges":["JS Starter","","CSS Designer","JS Starter"]}`
	if err := snap.Put(ctx, tracker.KeyProfile, []byte(raw)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	profile, err := tracker.NewProfileStore(snap).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"JS Starter", "CSS Designer"}
	if !reflect.DeepEqual(profile.Badges, want) {
		t.Errorf("Badges = %v, want %v", profile.Badges, want)
	}
}

func TestProfileStore_MalformedSnapshotStartsFresh(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `]]]`},
		{"wrong shape", `[1, 2, 3]`},
		{"wrong field type", `{"totalPoints":"lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := tracker.NewMemoryStore()
			ctx := context.Background()
			if err := snap.Put(ctx, tracker.KeyProfile, []byte(tt.raw)); err != nil {
				t.Fatalf("Put() error = %v", err)
			}

			profile, err := tracker.NewProfileStore(snap).Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v, want graceful fallback", err)
			}
			if profile.Level != 1 || profile.TotalPoints != 0 {
				t.Errorf("Load() = %+v, want a fresh profile", profile)
			}
		})
	}
}

func TestProfileHasBadge(t *testing.T) {
	profile := tracker.Profile{Badges: []string{"JS Starter"}}

	if !profile.HasBadge("JS Starter") {
		t.Error("HasBadge should find a held badge")
	}
	if profile.HasBadge("CSS Designer") {
		t.Error("HasBadge should not find a missing badge")
	}
}
