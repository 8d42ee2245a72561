package console

import (
	"fmt"
	"sync"
)

// Sequence issues formatted display identifiers ("P003", "INV-0042") from a
// monotonic counter owned by the console. A number is never reissued, so a
// delete followed by an add cannot produce a duplicate id the way
// length-derived ids did.
type Sequence struct {
	mu     sync.Mutex
	format string
	next   int
}

// NewSequence returns a sequence whose first issued number is start. Stores
// seeded with preformatted ids pass start = highest seed number + 1.
func NewSequence(format string, start int) *Sequence {
	if start < 1 {
		start = 1
	}
	return &Sequence{format: format, next: start}
}

// Next issues the next identifier.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf(s.format, s.next)
	s.next++
	return id
}

// Peek reports the number Next would issue, without consuming it.
func (s *Sequence) Peek() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
