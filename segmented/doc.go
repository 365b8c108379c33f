// SPDX-License-Identifier: MIT

// Package segmented ties a profile.Profile to an ordered partition of
// segment.Segment values covering its ring exactly once.
//
// 🚀 What is a segmented profile?
//
//	A Profile of N samples plus a partition: either the single whole-ring
//	segment (unsegmented) or two or more partial segments laid end to end
//	around the ring. Neighbours are derived from position in the partition
//	at query time; nothing caches next/previous links.
//
// ✨ Key features:
//   - StartFrom re-anchors index 0 on a landmark without moving any
//     segment relative to the samples
//   - Reverse / Interpolate keep segment correspondence
//   - MergeSegments / UnmergeSegment / SplitSegment / Update replace the
//     partition atomically: a rejected call leaves the profile untouched
//   - FrankenNormalise resamples each segment to a template's segment
//     lengths, bringing profiles of different lengths onto one scale
//   - ToRecord / FromRecord convert to the persisted shape in package record
//
// ⚙️ Usage:
//
//	p, _ := profile.New(samples)          // 100 samples
//	sp, _ := segmented.New(p)             // one whole-ring segment
//	_ = sp.SplitSegment(segment.WholeRingID, 50, "A", "B")
//	_ = sp.MergeSegments("A", "B", "C")   // C[0,0], sources A and B
//
// A Profile is not safe for concurrent mutation. Hand a Duplicate to other
// goroutines.
package segmented
