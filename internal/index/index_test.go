package index

import (
	"os"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "portfolio-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM posts`).Scan(&count); err != nil {
		t.Fatalf("posts table missing: %v", err)
	}
}

func TestUpsertAndGetChecksum(t *testing.T) {
	db := testDB(t)
	row := PostRow{
		Name:      "hello.mdx",
		Title:     "Hello World",
		Checksum:  "abc123",
		Tags:      []string{"go", "test"},
		UpdatedAt: time.Now(),
	}
	if err := db.UpsertPost(row, "This is a hello world post."); err != nil {
		t.Fatalf("UpsertPost: %v", err)
	}
	cs, err := db.GetChecksum("hello.mdx")
	if err != nil {
		t.Fatalf("GetChecksum: %v", err)
	}
	if cs != "abc123" {
		t.Errorf("checksum = %q, want %q", cs, "abc123")
	}
}

func TestGetPost(t *testing.T) {
	db := testDB(t)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	_ = db.UpsertPost(PostRow{
		Name:        "pi.mdx",
		Title:       "Pi Day",
		Description: "circles",
		Date:        date,
		Tags:        []string{"math"},
		Checksum:    "p1",
		UpdatedAt:   time.Now(),
	}, "body")

	p, err := db.GetPost("pi.mdx")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if p == nil {
		t.Fatal("GetPost returned nil for existing post")
	}
	if p.Title != "Pi Day" || p.Description != "circles" {
		t.Errorf("post = %+v", p)
	}
	if !p.Date.Equal(date) {
		t.Errorf("date = %v, want %v", p.Date, date)
	}
	if len(p.Tags) != 1 || p.Tags[0] != "math" {
		t.Errorf("tags = %v", p.Tags)
	}

	missing, err := db.GetPost("nope.mdx")
	if err != nil {
		t.Fatalf("GetPost missing: %v", err)
	}
	if missing != nil {
		t.Errorf("GetPost for absent name = %+v, want nil", missing)
	}
}

func TestDeletePost(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Name: "del.mdx", Checksum: "x", Tags: []string{}, UpdatedAt: time.Now()}, "body")

	if err := db.DeletePost("del.mdx"); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	cs, _ := db.GetChecksum("del.mdx")
	if cs != "" {
		t.Errorf("deleted post still has checksum %q", cs)
	}
}

func TestUpsertUpdatesExisting(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertPost(PostRow{Name: "up.mdx", Title: "Old", Checksum: "1", Tags: []string{}, UpdatedAt: now}, "old body")
	_ = db.UpsertPost(PostRow{Name: "up.mdx", Title: "New", Checksum: "2", Tags: []string{"new"}, UpdatedAt: now}, "new body")

	cs, _ := db.GetChecksum("up.mdx")
	if cs != "2" {
		t.Errorf("checksum = %q, want %q", cs, "2")
	}
	p, _ := db.GetPost("up.mdx")
	if p.Title != "New" {
		t.Errorf("title = %q, want %q", p.Title, "New")
	}
}

func TestGetChecksum_NotFound(t *testing.T) {
	db := testDB(t)
	cs, err := db.GetChecksum("nonexistent.mdx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs != "" {
		t.Errorf("expected empty checksum, got %q", cs)
	}
}

func seedPosts(t *testing.T, db *DB) {
	t.Helper()
	posts := []struct {
		name  string
		title string
		date  time.Time
		tags  []string
	}{
		{"oldest.mdx", "Charlie", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), []string{"go"}},
		{"middle.mdx", "Alpha", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), []string{"go", "web"}},
		{"newest.mdx", "Bravo", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), []string{"travel"}},
	}
	for i, p := range posts {
		err := db.UpsertPost(PostRow{
			Name:      p.name,
			Title:     p.title,
			Date:      p.date,
			Tags:      p.tags,
			Checksum:  string(rune('1' + i)),
			UpdatedAt: time.Now(),
		}, "body of "+p.name)
		if err != nil {
			t.Fatalf("seed %s: %v", p.name, err)
		}
	}
}

func TestListPosts_DateDescDefault(t *testing.T) {
	db := testDB(t)
	seedPosts(t, db)

	rows, total, err := db.ListPosts(10, 0, "", "")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("total=%d len=%d, want 3/3", total, len(rows))
	}
	want := []string{"newest.mdx", "middle.mdx", "oldest.mdx"}
	for i, w := range want {
		if rows[i].Name != w {
			t.Errorf("rows[%d] = %q, want %q", i, rows[i].Name, w)
		}
	}
}

func TestListPosts_TagFilter(t *testing.T) {
	db := testDB(t)
	seedPosts(t, db)

	rows, total, err := db.ListPosts(10, 0, "go", "")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("total=%d len=%d, want 2/2", total, len(rows))
	}
	for _, r := range rows {
		if r.Name == "newest.mdx" {
			t.Errorf("tag filter leaked %q", r.Name)
		}
	}
}

func TestListPosts_TitleSortAndPagination(t *testing.T) {
	db := testDB(t)
	seedPosts(t, db)

	rows, total, err := db.ListPosts(2, 1, "", "title")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	// Title order is Alpha, Bravo, Charlie; offset 1 limit 2.
	if len(rows) != 2 || rows[0].Title != "Bravo" || rows[1].Title != "Charlie" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestAllChecksums(t *testing.T) {
	db := testDB(t)
	seedPosts(t, db)

	all, err := db.AllChecksums()
	if err != nil {
		t.Fatalf("AllChecksums: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len = %d, want 3", len(all))
	}
	if all["oldest.mdx"] != "1" {
		t.Errorf("checksum = %q, want %q", all["oldest.mdx"], "1")
	}
}

func TestSearch_Basic(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Name: "s.mdx", Title: "Search Me", Checksum: "1", Tags: []string{}, UpdatedAt: time.Now()}, "uniqueword appears here")

	results, err := db.Search("uniqueword", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "s.mdx" {
		t.Errorf("search results = %+v, want 1 hit for s.mdx", results)
	}
}
