package id

import (
	"fmt"
	"time"
)

// FormatEntryID returns an entry ID like "2025-01-001".
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// Sequencer hands out per-month sequential entry IDs.
type Sequencer struct {
	last map[int]int // year*100+month -> last seq
}

// NewSequencer returns an empty Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{last: make(map[int]int)}
}

// Next consumes and returns the next ID for the month of date.
func (s *Sequencer) Next(date time.Time) string {
	key := date.Year()*100 + int(date.Month())
	s.last[key]++
	return FormatEntryID(date.Year(), int(date.Month()), s.last[key])
}

// Reset forgets every issued sequence.
func (s *Sequencer) Reset() {
	s.last = make(map[int]int)
}
