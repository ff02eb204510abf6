package aoc

import "github.com/gammazero/deque"

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

func NewQueue[T any](in ...T) *Queue[T] {
	q := new(Queue[T])
	for _, v := range in {
		q.Push(v)
	}
	return q
}

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[T any] struct {
	q deque.Deque[T]
}

func (q *Queue[T]) Len() int {
	return q.q.Len()
}

func (q *Queue[T]) Push(v T) {
	q.q.PushBack(v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if q.q.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.q.PopFront(), true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Counter is a multiset: each key maps to its (positive) number of
// occurrences.
type Counter[K comparable] map[K]int64

// CounterOf counts the elements of vs.
func CounterOf[K comparable](vs ...K) Counter[K] {
	c := make(Counter[K], len(vs))
	for _, v := range vs {
		c.Add(v, 1)
	}
	return c
}

// Add adds n occurrences of k.
func (c Counter[K]) Add(k K, n int64) {
	c[k] += n
}

// Total is the number of elements in the multiset, duplicates included.
func (c Counter[K]) Total() int64 {
	var n int64
	for _, v := range c {
		n += v
	}
	return n
}

// Merge adds every count of o to c.
func (c Counter[K]) Merge(o Counter[K]) Counter[K] {
	for k, v := range o {
		c[k] += v
	}
	return c
}
