// Package task holds the interactive state around a halfcover solve: the
// ordered point set a user builds up, the last solution, and the event log.
//
// The statement being solved: a set of points is given on the plane. Find
// two circles centred at points of the set such that each circle holds at
// least half of all points, and the smaller radius is minimal.
//
// A Task is safe for concurrent use. Solve works on a snapshot of the
// points taken when it starts; a failed Solve keeps the previous solution.
package task

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/halfcover/cover"
	"github.com/katalvlaran/halfcover/geom"
	"github.com/katalvlaran/halfcover/sample"
)

var (
	// ErrNotSolved is returned by Answer and Polylines when no solution is held.
	ErrNotSolved = errors.New("task: not solved")

	// ErrStaleSolve is returned when Cancel or Clear ran while a Solve was
	// in flight; the outdated result is dropped.
	ErrStaleSolve = errors.New("task: solution cancelled or points cleared during solve")
)

// Option configures New.
type Option func(*Task)

// WithLogger routes task events to l.
func WithLogger(l Logger) Option {
	return func(t *Task) {
		if l != nil {
			t.log = l
		}
	}
}

// WithPoints seeds the task with an initial point set (copied).
func WithPoints(points []geom.Point) Option {
	return func(t *Task) {
		t.points = append([]geom.Point(nil), points...)
	}
}

// Task is the mutable problem state.
type Task struct {
	mu     sync.RWMutex
	id     string
	points []geom.Point
	sol    cover.Solution
	solved bool
	gen    uint64 // bumped by Cancel and Clear
	log    Logger
}

// New returns an empty task with a fresh session id. Events go to Discard
// unless WithLogger is given.
func New(opts ...Option) *Task {
	t := &Task{id: uuid.NewString(), log: Discard}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ID returns the session id attached to log lines.
func (t *Task) ID() string { return t.id }

// AddPoint appends p. Non-finite coordinates are rejected so they never
// reach a solve.
func (t *Task) AddPoint(p geom.Point) error {
	if !p.IsFinite() {
		t.log.Error("[%s] point %v rejected: %v", t.id, p, cover.ErrNonFiniteCoordinate)
		return cover.ErrNonFiniteCoordinate
	}

	t.mu.Lock()
	t.points = append(t.points, p)
	t.mu.Unlock()

	t.log.Info("[%s] point %v added", t.id, p)

	return nil
}

// AddRandom appends n generated points (see sample.Points).
func (t *Task) AddRandom(n int, opts ...sample.Option) error {
	pts, err := sample.Points(n, opts...)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.points = append(t.points, pts...)
	t.mu.Unlock()

	t.log.Info("[%s] %d random points added", t.id, n)

	return nil
}

// Points returns a copy of the current point set.
func (t *Task) Points() []geom.Point {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]geom.Point(nil), t.points...)
}

// Len returns the number of points.
func (t *Task) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.points)
}

// Solve runs cover.Solve on a snapshot of the points. On success the
// solution replaces the previous one; on failure the previous solution
// and solved flag are left untouched.
func (t *Task) Solve(ctx context.Context) error {
	t.mu.RLock()
	snap := append([]geom.Point(nil), t.points...)
	gen := t.gen
	t.mu.RUnlock()

	sol, err := cover.Solve(ctx, snap)
	if err != nil {
		t.log.Error("[%s] solve failed on %d points: %v", t.id, len(snap), err)
		return err
	}

	t.mu.Lock()
	if t.gen != gen {
		t.mu.Unlock()
		t.log.Warn("[%s] solve result dropped: %v", t.id, ErrStaleSolve)
		return ErrStaleSolve
	}
	t.sol, t.solved = sol, true
	t.mu.Unlock()

	t.log.Info("[%s] solved on %d points: %s", t.id, len(snap), sol)

	return nil
}

// Solved reports whether a solution is held.
func (t *Task) Solved() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.solved
}

// Solution returns the held solution and whether there is one.
func (t *Task) Solution() (cover.Solution, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.sol, t.solved
}

// Cancel discards the solution and keeps the points. A Solve already in
// flight returns ErrStaleSolve instead of storing its result.
func (t *Task) Cancel() {
	t.mu.Lock()
	t.sol, t.solved = cover.Solution{}, false
	t.gen++
	t.mu.Unlock()

	t.log.Info("[%s] solution cancelled", t.id)
}

// Clear discards both the points and the solution.
func (t *Task) Clear() {
	t.mu.Lock()
	t.points = nil
	t.sol, t.solved = cover.Solution{}, false
	t.gen++
	t.mu.Unlock()

	t.log.Info("[%s] task cleared", t.id)
}

// Answer renders the held solution as
// "circle #1: center=(x, y) radius=r circle #2: ...".
func (t *Task) Answer() (string, error) {
	sol, ok := t.Solution()
	if !ok {
		return "", ErrNotSolved
	}

	return sol.String(), nil
}

// Polylines returns both circles as open rings of the given vertex count,
// ready for a renderer.
func (t *Task) Polylines(segments int) ([2][]geom.Point, error) {
	var out [2][]geom.Point
	sol, ok := t.Solution()
	if !ok {
		return out, ErrNotSolved
	}
	for i, c := range sol.Circles() {
		ring, err := c.Polyline(segments)
		if err != nil {
			return out, fmt.Errorf("circle #%d: %w", i+1, err)
		}
		out[i] = ring
	}

	return out, nil
}
