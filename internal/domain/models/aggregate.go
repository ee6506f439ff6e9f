package models

import "time"

// AggregateResult is the merged outcome of a multi-item fetch.
//
// Items holds only successful keys; failed or skipped keys are absent.
// FetchedAt is captured once per request, not per item.
type AggregateResult[T any] struct {
	Items     map[string]T
	FetchedAt time.Time
	Skipped   int
}
