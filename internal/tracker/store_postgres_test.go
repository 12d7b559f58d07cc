package tracker_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/me-learn/tracker/internal/tracker"
)

// TestPostgresStore spins up a throwaway postgres container. Run with -short
// to skip it on machines without a container runtime.
func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("tracker"),
		tcpostgres.WithUsername("tracker"),
		tcpostgres.WithPassword("tracker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("creating pool: %v", err)
	}
	defer pool.Close()

	store, err := tracker.NewPostgresStore(ctx, pool)
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, tracker.KeyProfile)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("Get() should report missing on an empty table")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		if err := store.Put(ctx, tracker.KeyProfile, []byte(`{"streak": 2}`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		data, ok, err := store.Get(ctx, tracker.KeyProfile)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok {
			t.Fatal("Get() should find the stored snapshot")
		}
		if string(data) != `{"streak": 2}` {
			t.Errorf("Get() = %q, want stored snapshot", data)
		}
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		if err := store.Put(ctx, tracker.KeyCourses, []byte(`[{"id": 1}]`)); err != nil {
			t.Fatalf("first Put() error = %v", err)
		}
		if err := store.Put(ctx, tracker.KeyCourses, []byte(`[{"id": 2}]`)); err != nil {
			t.Fatalf("second Put() error = %v", err)
		}

		data, _, err := store.Get(ctx, tracker.KeyCourses)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(data) != `[{"id": 2}]` {
			t.Errorf("Get() = %q, want latest snapshot", data)
		}
	})

	t.Run("survives reconnect", func(t *testing.T) {
		again, err := tracker.NewPostgresStore(ctx, pool)
		if err != nil {
			t.Fatalf("NewPostgresStore() error = %v", err)
		}
		_, ok, err := again.Get(ctx, tracker.KeyProfile)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok {
			t.Error("a second store over the same database should see the snapshot")
		}
	})
}
