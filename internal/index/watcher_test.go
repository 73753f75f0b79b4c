package index

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/i-asim/my-portfolio/internal/storage"
)

// watcherTestEnv sets up a content dir, storage, and DB for watcher tests.
func watcherTestEnv(t *testing.T) (string, storage.Provider, *DB) {
	t.Helper()
	contentDir := t.TempDir()
	store, err := storage.NewFS(contentDir)
	if err != nil {
		t.Fatal(err)
	}
	dbFile, err := os.CreateTemp("", "portfolio-watcher-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })
	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return contentDir, store, db
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatcher_NewFileIndexed(t *testing.T) {
	contentDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var events []string

	go Watch(ctx, db, store, contentDir, logger, func(kind, name string) {
		mu.Lock()
		events = append(events, kind+":"+name)
		mu.Unlock()
	})

	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(contentDir, "new.mdx"), []byte("---\ntitle: New\n---\n# New"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		cs, _ := db.GetChecksum("new.mdx")
		return cs != ""
	}, "new file not indexed by watcher")

	eventually(t, 2*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range events {
			if e == "created:new.mdx" {
				return true
			}
		}
		return false
	}, "expected created:new.mdx callback")
}

func TestWatcher_NewDirWatched(t *testing.T) {
	contentDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, store, contentDir, logger, nil)

	time.Sleep(100 * time.Millisecond)

	subDir := filepath.Join(contentDir, "drafts")
	_ = os.MkdirAll(subDir, 0o755)

	time.Sleep(200 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(subDir, "deep.mdx"), []byte("# Deep"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		cs, _ := db.GetChecksum(filepath.Join("drafts", "deep.mdx"))
		return cs != ""
	}, "file in new subdir not indexed by watcher")
}

func TestWatcher_DeleteRemovesFromIndex(t *testing.T) {
	contentDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	_ = os.WriteFile(filepath.Join(contentDir, "del.mdx"), []byte("# Delete Me"), 0o644)
	Sync(db, store, logger)

	cs, _ := db.GetChecksum("del.mdx")
	if cs == "" {
		t.Fatal("precondition: file should be indexed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, store, contentDir, logger, nil)
	time.Sleep(100 * time.Millisecond)

	_ = os.Remove(filepath.Join(contentDir, "del.mdx"))

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		cs, _ := db.GetChecksum("del.mdx")
		return cs == ""
	}, "deleted file still in index")
}

func TestWatcher_RenameReconciles(t *testing.T) {
	contentDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	_ = os.WriteFile(filepath.Join(contentDir, "old.mdx"), []byte("# Rename"), 0o644)
	Sync(db, store, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, store, contentDir, logger, nil)
	time.Sleep(100 * time.Millisecond)

	_ = os.Rename(filepath.Join(contentDir, "old.mdx"), filepath.Join(contentDir, "renamed.mdx"))

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		oldCS, _ := db.GetChecksum("old.mdx")
		newCS, _ := db.GetChecksum("renamed.mdx")
		return oldCS == "" && newCS != ""
	}, "rename reconciliation failed: old path should be removed and new path indexed")
}

func TestSync_IndexesTitleAndTags(t *testing.T) {
	contentDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	doc := "---\ntitle: \"Sync Test\"\ndate: \"2026-01-15\"\ntags:\n  - go\n  - blog\n---\n\nBody text.\n"
	_ = os.WriteFile(filepath.Join(contentDir, "sync.mdx"), []byte(doc), 0o644)

	if err := Sync(db, store, logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	p, err := db.GetPost("sync.mdx")
	if err != nil || p == nil {
		t.Fatalf("GetPost: %v %v", p, err)
	}
	if p.Title != "Sync Test" {
		t.Errorf("title = %q", p.Title)
	}
	if len(p.Tags) != 2 {
		t.Errorf("tags = %v", p.Tags)
	}
	if p.Date.Year() != 2026 {
		t.Errorf("date = %v", p.Date)
	}
}

func TestSync_RemovesStaleEntries(t *testing.T) {
	contentDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	_ = os.WriteFile(filepath.Join(contentDir, "keep.mdx"), []byte("keep"), 0o644)
	_ = os.WriteFile(filepath.Join(contentDir, "stale.mdx"), []byte("stale"), 0o644)
	Sync(db, store, logger)

	_ = os.Remove(filepath.Join(contentDir, "stale.mdx"))
	Sync(db, store, logger)

	if cs, _ := db.GetChecksum("stale.mdx"); cs != "" {
		t.Error("stale entry survived sync")
	}
	if cs, _ := db.GetChecksum("keep.mdx"); cs == "" {
		t.Error("kept entry disappeared")
	}
}

func TestIndexDocument_TitleFallbacks(t *testing.T) {
	db := testDB(t)

	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"titled.mdx", "---\ntitle: \"From Front Matter\"\n---\n\n# Heading\n", "From Front Matter"},
		{"headed.mdx", "# First Heading\n\nBody.\n", "First Heading"},
		{"notes/bare.mdx", "plain body\n", "bare"},
	}
	for _, tc := range cases {
		if err := IndexDocument(db, tc.name, []byte(tc.doc)); err != nil {
			t.Fatalf("IndexDocument(%s): %v", tc.name, err)
		}
		p, err := db.GetPost(tc.name)
		if err != nil || p == nil {
			t.Fatalf("GetPost(%s): %v %v", tc.name, p, err)
		}
		if p.Title != tc.want {
			t.Errorf("%s title = %q, want %q", tc.name, p.Title, tc.want)
		}
	}
}
