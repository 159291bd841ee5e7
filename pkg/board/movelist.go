package board

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// MoveList is the simplest PotentialSink: it just appends, preserving
// generation order. Most callers that only need "all pseudo-legal moves
// as a slice" want this rather than PriorityMoveList.
type MoveList struct {
	Moves []Move
}

func (l *MoveList) GeneratePotential(m Move) {
	l.Moves = append(l.Moves, m)
}

// MovePriority is a move ordering score: higher sorts first.
type MovePriority int16

// MovePriorityFn assigns an ordering priority to a move.
type MovePriorityFn func(move Move) MovePriority

// First puts the given move first, deferring to fn for every other move.
// Useful for replaying a principal variation's head move before falling
// back to a generic ordering heuristic.
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first.Equals(m) {
			return math.MaxInt16
		}
		return fn(m)
	}
}

// SortByPriority sorts moves by priority, preserving relative order
// among equal priorities.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// PriorityMoveList is a PotentialSink backed by a binary heap, so moves
// can be generated in one pass and then drained highest-priority-first.
// Moves of equal priority are drained in no particular order.
type PriorityMoveList struct {
	fn MovePriorityFn
	h  moveHeap
}

// NewPriorityMoveList returns an empty sink that will order generated
// moves by fn.
func NewPriorityMoveList(fn MovePriorityFn) *PriorityMoveList {
	return &PriorityMoveList{fn: fn}
}

func (l *PriorityMoveList) GeneratePotential(m Move) {
	heap.Push(&l.h, elm{m: m, val: l.fn(m)})
}

// Next pops the highest-priority remaining move.
func (l *PriorityMoveList) Next() (Move, bool) {
	if l.Size() == 0 {
		return Move{}, false
	}
	ret := heap.Pop(&l.h).(elm)
	return ret.m, true
}

func (l *PriorityMoveList) Size() int {
	return l.h.Len()
}

func (l *PriorityMoveList) String() string {
	if l.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", l.h[0].m, l.Size())
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int { return len(h) }

func (h moveHeap) Less(i, j int) bool { return h[i].val > h[j].val }

func (h moveHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *moveHeap) Push(x interface{}) {
	*h = append(*h, x.(elm))
}

func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ret := old[n-1]
	*h = old[:n-1]
	return ret
}
