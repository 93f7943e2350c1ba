package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by an explicit clock, used by tests and by callers
// that need deterministic replay. Tasks only run inside Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner    *Manual
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool
}

func (t *manualTask) Cancel() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{owner: m, deadline: m.now.Add(d), seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Pending counts tasks that have neither run nor been cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every task that falls due in
// deadline order. Tasks scheduled by running tasks are honoured if they fall due
// before the new time.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

func (m *Manual) popDue(target time.Time) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	m.tasks = live
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].deadline.Equal(m.tasks[j].deadline) {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].deadline.Before(m.tasks[j].deadline)
	})
	head := m.tasks[0]
	if head.deadline.After(target) {
		return nil
	}
	head.done = true
	if head.deadline.After(m.now) {
		m.now = head.deadline
	}
	return head
}

var _ Scheduler = (*Manual)(nil)
