// Package ring implements index arithmetic over a circular index space of
// fixed size N, where index N is identified with index 0.
//
// Every other package in cellprof builds on these helpers: profiles wrap
// sample offsets with Wrap, segments measure themselves with ArcLength and
// test membership with RangeContains.
//
// Arc conventions:
//
//	start <  end  — the arc walks forward start, start+1, …, end.
//	start >  end  — the arc wraps: start, …, N-1, 0, …, end.
//	start == end  — the whole ring (a sentinel arc of length N+1: every
//	                position once, plus the shared start/end point).
//
// Complexity: every function is O(1) and allocation free.
package ring
