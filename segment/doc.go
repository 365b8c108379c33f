// SPDX-License-Identifier: MIT

// Package segment provides Segment, a named contiguous (possibly wrapping)
// index range over a ring of N positions, together with the ordered tree of
// merge sources it was built from.
//
// 🚀 What is a segment?
//
//	A segmented profile splits the ring of border samples into landmark
//	delimited arcs. Each arc is a Segment [start, end], both endpoints
//	inclusive. Adjacent segments share their boundary index, so a partition
//	of k segments over a ring of size N satisfies
//
//	    Σ Length(s) − k == N
//
//	A segment with start == end covers the whole ring (Length N+1); the
//	reserved WholeRingID names the single segment of an unsegmented profile.
//
// ✨ Key features:
//   - construction validates range, minimum length and identifier
//   - merge provenance kept as an owned, value-typed tree (MergeSources)
//   - Update moves a boundary and the neighbours sharing it, atomically:
//     every constraint is checked before anything is written
//   - Merge / Split / Offset / Reverse return new segments
//   - ValidatePartition checks the ring-cover invariants of a whole list
//
// ⚙️ Usage:
//
//	a, _ := segment.New("A", 0, 50, 100)
//	b, _ := segment.New("B", 50, 0, 100)
//	c, _ := segment.Merge(a, b, "C")   // c.Length() == 101, sources [A B]
//
//	err := segment.Update(a, b, b, 10, 60)
//	if errors.Is(err, segment.ErrUpdateRejected) { … }
//
// Segments carry no reference to an owning profile; neighbours are passed in
// explicitly by the caller (see package segmented).
package segment
