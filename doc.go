// Package cellprof is a toolkit for circular 1-D profiles of cell outlines
// and their partition into named, lockable segments.
//
// 🚀 What is cellprof?
//
//	A small, dependency-light engine that brings together:
//		• Ring arithmetic: wrapping, arc lengths, shortest distances
//		• Profiles: immutable samples around a closed outline
//		• Segments: inclusive index ranges with merge provenance
//		• Segmented profiles: gap-free partitions kept valid on every edit
//		• Persistence: JSON / YAML documents checked against a JSON schema
//		• Comparison: rotation fitting plus Dynamic Time Warping (DTW)
//
// ✨ Why choose cellprof?
//
//   - Every edit is all-or-nothing: a rejected update leaves the partition untouched
//   - Errors are sentinels: match with errors.Is
//   - Pure Go libraries, with a cobra CLI on top
//
// Packages:
//
//	ring/      — index arithmetic on a ring of N positions
//	profile/   — samples, resampling, extrema, best-fit rotation
//	segment/   — segments, merge-source trees, neighbour-aware updates
//	segmented/ — partitioned profiles: merge, split, update, franken-normalise
//	record/    — persisted shapes
//	codec/     — JSON / YAML encoding and schema validation
//	dtw/       — Dynamic Time Warping distance between profiles
//
// Quick ASCII example (N = 12, three segments):
//
//	 0 ─ A ─ 4 ─ B ─ 8 ─ C ─ 0
//	 └───────── ring ─────────┘
//
// Neighbouring segments share their boundary index, so lengths sum to
// N plus the number of segments.
//
//	go install github.com/katalvlaran/cellprof/cmd/profilectl@latest
package cellprof
