package models

import "time"

// Feed is one ingested XML file, recorded in the feeds table.
//
// Checksum is the hex SHA-256 of the raw file and is the idempotency key:
// the same bytes are never ingested twice unless forced.
type Feed struct {
	ID           string
	Filename     string
	Checksum     string
	ListingCount int
	LaunchCount  int
	IngestedAt   time.Time
}
