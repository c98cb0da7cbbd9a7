package main

import (
	"testing"
)

func TestOpenDB(t *testing.T) {
	db, err := openDB(":memory:")
	if err != nil {
		t.Fatalf("openDB() error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("db.Ping() error: %v", err)
	}
}

func TestInitDB(t *testing.T) {
	db, err := openDB(":memory:")
	if err != nil {
		t.Fatalf("openDB() error: %v", err)
	}
	defer db.Close()

	if err := initDB(db); err != nil {
		t.Fatalf("initDB() error: %v", err)
	}

	// Verify posts table exists with correct columns
	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('posts') WHERE name IN ('id', 'category', 'title', 'content')`).Scan(&count)
	if err != nil {
		t.Fatalf("querying posts schema: %v", err)
	}
	if count != 4 {
		t.Errorf("posts table: expected 4 columns, got %d", count)
	}

	// Verify sessions table exists
	err = db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('sessions')`).Scan(&count)
	if err != nil {
		t.Fatalf("querying sessions schema: %v", err)
	}
	if count != 2 {
		t.Errorf("sessions table: expected 2 columns, got %d", count)
	}
}

func TestInitDB_Idempotent(t *testing.T) {
	db, err := openDB(":memory:")
	if err != nil {
		t.Fatalf("openDB() error: %v", err)
	}
	defer db.Close()

	// Call initDB twice - should not error
	if err := initDB(db); err != nil {
		t.Fatalf("first initDB() error: %v", err)
	}
	if err := initDB(db); err != nil {
		t.Fatalf("second initDB() error: %v", err)
	}
}

func TestSeedDB(t *testing.T) {
	db := setupTestDB(t)

	if err := seedDB(db); err != nil {
		t.Fatalf("seedDB() error: %v", err)
	}

	if n := countPosts(t, db); n != 5 {
		t.Errorf("expected 5 seeded posts, got %d", n)
	}

	var categories int
	err := db.QueryRow("SELECT COUNT(DISTINCT category) FROM posts").Scan(&categories)
	if err != nil {
		t.Fatalf("counting categories: %v", err)
	}
	if categories != 4 {
		t.Errorf("expected 4 distinct categories, got %d", categories)
	}

	for _, cat := range categoryOrder {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM posts WHERE category = ?", cat).Scan(&n); err != nil {
			t.Fatalf("counting category %q: %v", cat, err)
		}
		if n == 0 {
			t.Errorf("expected seed posts in category %q", cat)
		}
	}
}

func TestSeedDB_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := seedDB(db); err != nil {
		t.Fatalf("first seedDB() error: %v", err)
	}
	if err := seedDB(db); err != nil {
		t.Fatalf("second seedDB() error: %v", err)
	}

	if n := countPosts(t, db); n != 5 {
		t.Errorf("expected 5 posts after repeated seeding, got %d", n)
	}
}

func TestSeedDB_SkipsWhenDataExists(t *testing.T) {
	db := setupTestDB(t)

	if _, err := createPost(db, "전체 일정", "Existing", "Content"); err != nil {
		t.Fatalf("creating existing post: %v", err)
	}

	// Seed should skip
	if err := seedDB(db); err != nil {
		t.Fatalf("seedDB() error: %v", err)
	}

	if n := countPosts(t, db); n != 1 {
		t.Errorf("expected 1 post (seed skipped), got %d", n)
	}
}

func TestSeedDB_ReseedsEmptyTableAtInit(t *testing.T) {
	db := setupTestDB(t)

	if err := seedDB(db); err != nil {
		t.Fatalf("seedDB() error: %v", err)
	}

	// An admin clears the board; nothing reseeds mid-run, but the next
	// startup finds count==0 and seeds again.
	if _, err := db.Exec("DELETE FROM posts"); err != nil {
		t.Fatalf("clearing posts: %v", err)
	}

	if err := seedDB(db); err != nil {
		t.Fatalf("seedDB() after clear error: %v", err)
	}

	if n := countPosts(t, db); n != 5 {
		t.Errorf("expected 5 posts after reseed, got %d", n)
	}
}
