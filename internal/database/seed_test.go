package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed creates data only when the catalog is empty. Call it twice to
	// verify idempotency. We don't clear the database first because other
	// test packages may be running concurrently against the same database.
	if err := Seed(db, 32); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db, 32); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM images").Scan(&count); err != nil {
		t.Fatalf("count images: %v", err)
	}
	if count < 1 {
		t.Errorf("expected catalog entries after seed, got %d", count)
	}

	// The picsum URL suffix must line up with the feed sequence so modal
	// navigation lands on catalog neighbors.
	var url string
	if err := db.QueryRow("SELECT url FROM images WHERE seq = 1").Scan(&url); err != nil {
		t.Fatalf("select seq 1: %v", err)
	}
	if want := "https://picsum.photos/800/800?1"; url != want {
		t.Errorf("seq 1 url: got %q, want %q", url, want)
	}

	// SeedURLs must also be a no-op once the catalog is populated.
	if err := SeedURLs(db, []string{"https://cdn.example.com/a.jpg"}); err != nil {
		t.Fatalf("SeedURLs on populated catalog: %v", err)
	}
	var bucketCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM images WHERE source = 'bucket'").Scan(&bucketCount); err != nil {
		t.Fatalf("count bucket images: %v", err)
	}
	if bucketCount != 0 {
		t.Errorf("SeedURLs should not insert into a populated catalog, got %d rows", bucketCount)
	}
}
