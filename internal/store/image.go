// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer for the image catalog.
package store

import (
	"database/sql"
	"fmt"

	"scrollery/internal/models"
)

// ImageStore handles all image-catalog database operations.
type ImageStore struct {
	db *sql.DB
}

// NewImageStore creates a new ImageStore with the given database connection.
func NewImageStore(db *sql.DB) *ImageStore {
	return &ImageStore{db: db}
}

// FeedPage returns the next slice of the feed after the given cursor,
// using keyset pagination on the seq column. When the cursor runs past
// the end of the catalog the feed wraps back to the beginning, keeping
// the scroll infinite.
func (s *ImageStore) FeedPage(after int64, limit int) (*models.FeedPage, error) {
	images, err := s.pageAfter(after, limit)
	if err != nil {
		return nil, err
	}

	// Past the last entry: wrap around to the start of the catalog.
	if len(images) == 0 && after > 0 {
		images, err = s.pageAfter(0, limit)
		if err != nil {
			return nil, err
		}
	}

	page := &models.FeedPage{Images: images}
	if len(images) > 0 {
		page.Next = images[len(images)-1].Seq
	}
	return page, nil
}

// pageAfter runs the keyset query for one page.
func (s *ImageStore) pageAfter(after int64, limit int) ([]models.Image, error) {
	rows, err := s.db.Query(`
		SELECT id, seq, url, alt, source, created_at
		FROM images
		WHERE seq > $1
		ORDER BY seq
		LIMIT $2
	`, after, limit)
	if err != nil {
		return nil, fmt.Errorf("feed page after %d: %w", after, err)
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(
			&img.ID, &img.Seq, &img.URL, &img.Alt, &img.Source, &img.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Count returns the number of catalog entries.
func (s *ImageStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM images").Scan(&count); err != nil {
		return 0, fmt.Errorf("count images: %w", err)
	}
	return count, nil
}

// MaxSeq returns the highest sequence number in the catalog, or 0 when
// the catalog is empty. New entries append after it.
func (s *ImageStore) MaxSeq() (int64, error) {
	var max int64
	if err := s.db.QueryRow("SELECT COALESCE(MAX(seq), 0) FROM images").Scan(&max); err != nil {
		return 0, fmt.Errorf("max seq: %w", err)
	}
	return max, nil
}

// Insert appends one image to the end of the feed and returns it with
// its assigned id and sequence number.
func (s *ImageStore) Insert(url, alt string, source models.ImageSource) (*models.Image, error) {
	max, err := s.MaxSeq()
	if err != nil {
		return nil, err
	}

	img := &models.Image{Seq: max + 1, URL: url, Alt: alt, Source: source}
	err = s.db.QueryRow(`
		INSERT INTO images (seq, url, alt, source)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, img.Seq, img.URL, img.Alt, img.Source).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert image %q: %w", url, err)
	}
	return img, nil
}
