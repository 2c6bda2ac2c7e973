package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"scrollery/internal/models"
)

// Seed populates the image catalog on first run. It is a no-op when the
// catalog already has entries. Each entry points at picsum.photos, which
// serves a stable photo per numeric URL suffix; the suffix doubles as the
// feed sequence so modal left/right navigation lines up with the catalog.
func Seed(db *sql.DB, count int) error {
	var existing int
	if err := db.QueryRow("SELECT COUNT(*) FROM images").Scan(&existing); err != nil {
		return fmt.Errorf("seed check images: %w", err)
	}

	if existing > 0 {
		slog.Info("image catalog already seeded, skipping", "count", existing)
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO images (seq, url, alt, source)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("seed prepare: %w", err)
	}
	defer stmt.Close()

	for i := 1; i <= count; i++ {
		url := fmt.Sprintf("https://picsum.photos/800/800?%d", i)
		alt := fmt.Sprintf("Random photo %d", i)
		if _, err := stmt.Exec(int64(i), url, alt, models.SourcePicsum); err != nil {
			return fmt.Errorf("seed insert %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("image catalog seeded", "count", count, "source", models.SourcePicsum)
	return nil
}

// SeedURLs populates the catalog from a list of object URLs, typically
// produced by listing a configured S3 bucket. Like Seed, it is a no-op
// when the catalog already has entries.
func SeedURLs(db *sql.DB, urls []string) error {
	var existing int
	if err := db.QueryRow("SELECT COUNT(*) FROM images").Scan(&existing); err != nil {
		return fmt.Errorf("seed check images: %w", err)
	}

	if existing > 0 {
		slog.Info("image catalog already seeded, skipping", "count", existing)
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO images (seq, url, alt, source)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("seed prepare: %w", err)
	}
	defer stmt.Close()

	for i, url := range urls {
		if _, err := stmt.Exec(int64(i+1), url, "", models.SourceBucket); err != nil {
			return fmt.Errorf("seed insert %q: %w", url, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("image catalog seeded from bucket", "count", len(urls))
	return nil
}
