package portfolio

import (
	"sort"
	"time"
)

// Token identifies a scheduled callback.
type Token uint64

type task struct {
	token Token
	due   time.Duration
	fn    func()
}

// Scheduler runs delayed callbacks on the frame loop. Nothing fires on its
// own: callbacks run inside Advance, on the caller's goroutine, in due-time
// order with ties broken by scheduling order.
type Scheduler struct {
	now   time.Duration
	next  Token
	tasks []task // sorted by (due, token)
}

// NewScheduler returns a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once the clock reaches Now()+d.
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	s.next++
	t := task{token: s.next, due: s.now + d, fn: fn}
	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].due > t.due
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
	return t.token
}

// Cancel removes a pending callback. It reports whether one was removed.
func (s *Scheduler) Cancel(tok Token) bool {
	for i, t := range s.tasks {
		if t.token == tok {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock to now and runs every callback that is due.
// The clock never goes backwards. Callbacks see Now() equal to their own due
// time, so anything they schedule is relative to when they were meant to run.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(now time.Duration) int {
	if now < s.now {
		now = s.now
	}
	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].due <= now {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.now = t.due
		t.fn()
		ran++
	}
	s.now = now
	return ran
}

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Clear drops every pending callback.
func (s *Scheduler) Clear() {
	s.tasks = nil
}
