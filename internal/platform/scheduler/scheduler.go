// Package scheduler runs delayed continuations one at a time, in deadline order.
//
// Continuations sharing a deadline run in the order they were scheduled. A task runs
// at most once and a cancelled task never runs.
package scheduler

import (
	"container/heap"
	"log/slog"
	"sync"
	"time"
)

// Scheduler schedules fn to run once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
	Now() time.Time
}

// Task is a handle on a scheduled continuation.
type Task interface {
	// Cancel prevents the task from running. It reports whether the task was still
	// pending.
	Cancel() bool
}

type entry struct {
	deadline time.Time
	seq      uint64
	fn       func()
	index    int
	done     bool
	owner    *Loop
}

func (e *entry) Cancel() bool {
	l := e.owner
	l.mu.Lock()
	defer l.mu.Unlock()
	if e.done {
		return false
	}
	e.done = true
	if e.index >= 0 {
		heap.Remove(&l.queue, e.index)
	}
	l.signalLocked()
	return true
}

type entryQueue []*entry

func (q entryQueue) Len() int { return len(q) }
func (q entryQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}
func (q entryQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *entryQueue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}
func (q *entryQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Loop is the production Scheduler: a single goroutine draining a deadline heap.
type Loop struct {
	mu     sync.Mutex
	queue  entryQueue
	seq    uint64
	wake   chan struct{}
	stop   chan struct{}
	done   chan struct{}
	closed bool
	now    func() time.Time
}

// NewLoop starts the scheduling goroutine. Close must be called to release it.
func NewLoop() *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
		now:  time.Now,
	}
	go l.run()
	return l
}

func (l *Loop) Now() time.Time { return l.now() }

func (l *Loop) AfterFunc(d time.Duration, fn func()) Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	e := &entry{deadline: l.now().Add(d), seq: l.seq, fn: fn, index: -1, owner: l}
	if l.closed {
		e.done = true
		return e
	}
	heap.Push(&l.queue, e)
	l.signalLocked()
	return e
}

// Close stops the loop and discards every pending task.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	for _, e := range l.queue {
		e.done = true
		e.index = -1
	}
	l.queue = nil
	close(l.stop)
	l.mu.Unlock()
	<-l.done
}

func (l *Loop) signalLocked() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) run() {
	defer close(l.done)
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		fn, wait, ok := l.next()
		if ok {
			l.invoke(fn)
			continue
		}

		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-l.wake:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-l.stop:
			return
		}
	}
}

// next pops the earliest due task, or reports how long to sleep.
func (l *Loop) next() (func(), time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, time.Hour, false
	}
	head := l.queue[0]
	if wait := head.deadline.Sub(l.now()); wait > 0 {
		return nil, wait, false
	}
	heap.Pop(&l.queue)
	head.done = true
	return head.fn, 0, true
}

func (l *Loop) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("scheduled task panicked", slog.Any("error", r))
		}
	}()
	fn()
}

var _ Scheduler = (*Loop)(nil)
