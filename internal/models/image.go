// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data types shared across the gallery:
// catalog images, feed pages, and modal navigation.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageSource identifies where a catalog entry's file lives.
type ImageSource string

const (
	// SourcePicsum marks images served by picsum.photos. The numeric
	// suffix of the URL selects a stable photo.
	SourcePicsum ImageSource = "picsum"

	// SourceBucket marks images served from S3-compatible object storage.
	SourceBucket ImageSource = "bucket"
)

// Image is one entry in the gallery feed. Only metadata is stored in
// PostgreSQL; the file itself is fetched by the browser from URL.
type Image struct {
	ID        uuid.UUID
	Seq       int64 // monotonic feed position; keyset pagination cursor
	URL       string
	Alt       string
	Source    ImageSource
	CreatedAt time.Time
}

// FeedPage is one server-rendered slice of the infinite feed. Next is
// the cursor the sentinel element carries for the following request.
type FeedPage struct {
	Images []Image
	Next   int64
}

// NeighborURL derives the adjacent image URL from the numeric suffix of
// a feed URL: "https://picsum.photos/800/800?41" becomes "...?40" for
// left and "...?42" for right. Returns false when the URL carries no
// numeric suffix, in which case the modal renders without navigation.
func NeighborURL(raw string, dir Direction) (string, bool) {
	base, id, ok := strings.Cut(raw, "?")
	if !ok {
		return "", false
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "", false
	}
	if dir == DirectionLeft {
		n--
	} else {
		n++
	}
	return fmt.Sprintf("%s?%d", base, n), true
}
