package race

// Report is the single message a task sends to the coordinator.
type Report struct {
	Task  int   // position of the task in the slice passed to Run
	Index int   // absolute match position; meaningful only when Found
	Found bool  // true on a positive report
	Err   error // non-nil when the task failed; the report is then negative
}

// Tracker resolves a set of task reports into exactly one outcome.
//
// It has no goroutines or channels of its own, so the resolution rules can be
// tested without any scheduling. Not safe for concurrent use: the coordinator
// owns it.
//
// In ordered mode a positive report from task i resolves only once every task
// j < i has reported negative, so the winner is always the earliest task with
// a match. In unordered mode the first positive report observed wins.
type Tracker struct {
	ordered  bool
	slots    []*Report
	received int

	resolved bool
	winner   Report
}

// NewTracker returns a tracker for n tasks.
func NewTracker(n int, ordered bool) *Tracker {
	return &Tracker{
		ordered: ordered,
		slots:   make([]*Report, n),
	}
}

// Observe records r and reports whether the outcome is now resolved.
// Reports after resolution, duplicate reports for the same task, and reports
// for unknown tasks are ignored.
func (t *Tracker) Observe(r Report) bool {
	if t.resolved {
		return true
	}
	if r.Task < 0 || r.Task >= len(t.slots) || t.slots[r.Task] != nil {
		return false
	}
	if r.Err != nil {
		r.Found = false
	}
	t.slots[r.Task] = &r
	t.received++

	if !t.ordered {
		if r.Found {
			t.resolve(r)
		} else if t.received == len(t.slots) {
			t.resolve(Report{Task: -1, Index: -1})
		}
		return t.resolved
	}

	for _, s := range t.slots {
		switch {
		case s == nil:
			return false
		case s.Found:
			t.resolve(*s)
			return true
		}
	}
	t.resolve(Report{Task: -1, Index: -1})
	return true
}

func (t *Tracker) resolve(r Report) {
	t.resolved = true
	t.winner = r
}

// Resolved reports whether an outcome has been decided.
func (t *Tracker) Resolved() bool { return t.resolved }

// Received returns the number of distinct tasks that have reported.
func (t *Tracker) Received() int { return t.received }

// Winner returns the deciding report. For a negative outcome Task and Index
// are -1. The second result is false while the tracker is unresolved.
func (t *Tracker) Winner() (Report, bool) {
	return t.winner, t.resolved
}
