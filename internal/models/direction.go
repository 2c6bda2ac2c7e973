// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Direction indicates which way the user navigated while the image
// modal is open. It is carried in the "dir" query parameter so the
// replacement fragment can animate from the correct side.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// String returns the query-parameter form of the direction.
func (d Direction) String() string {
	return string(d)
}

// ParseDirection parses the "dir" query parameter. Anything other than
// "left" or "right" reports false, meaning the modal was opened
// directly rather than navigated to.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirectionLeft, true
	case "right":
		return DirectionRight, true
	}
	return "", false
}
