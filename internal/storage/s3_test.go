// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import "testing"

func TestNewUnconfigured(t *testing.T) {
	// Missing endpoint/credentials/bucket means no storage, not an error.
	cases := []struct {
		name                       string
		endpoint, key, bucket      string
	}{
		{"all empty", "", "", ""},
		{"no endpoint", "", "AKIATEST", "imgs"},
		{"no access key", "https://s3.example.com", "", "imgs"},
		{"no bucket", "https://s3.example.com", "AKIATEST", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.endpoint, "auto", tc.key, "secret", tc.bucket, "")
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if c != nil {
				t.Error("expected nil client when storage is unconfigured")
			}
		})
	}
}

func TestFileURL(t *testing.T) {
	t.Run("path-style URL from endpoint", func(t *testing.T) {
		c, err := New("https://s3.example.com/", "auto", "AKIATEST", "secret", "imgs", "")
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got, want := c.FileURL("a/b.jpg"), "https://s3.example.com/imgs/a/b.jpg"; got != want {
			t.Errorf("FileURL: got %q, want %q", got, want)
		}
	})

	t.Run("public URL takes precedence", func(t *testing.T) {
		c, err := New("https://s3.example.com", "auto", "AKIATEST", "secret", "imgs", "https://cdn.example.com/")
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got, want := c.FileURL("b.png"), "https://cdn.example.com/b.png"; got != want {
			t.Errorf("FileURL: got %q, want %q", got, want)
		}
	})
}

func TestIsImageKey(t *testing.T) {
	yes := []string{"a.jpg", "dir/b.JPEG", "c.png", "d.webp", "e.avif", "f.gif"}
	no := []string{"a.txt", "b.mp4", "notes.md", "jpg", "archive.jpg.zip"}

	for _, key := range yes {
		if !isImageKey(key) {
			t.Errorf("isImageKey(%q) should be true", key)
		}
	}
	for _, key := range no {
		if isImageKey(key) {
			t.Errorf("isImageKey(%q) should be false", key)
		}
	}
}
