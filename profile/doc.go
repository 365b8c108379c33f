// Package profile provides Profile, an immutable circular sequence of N
// float64 samples taken around a closed object outline.
//
// 🚀 What is a profile?
//
//	Walk the border of a segmented cell and record one measurement per border
//	point (an angle, a diameter, a distance from the centre of mass). The
//	result is a ring of N samples: index N is index 0 again. Profile wraps
//	that ring and offers the operations morphology analysis is built from:
//
//	  • arithmetic against scalars and other profiles
//	  • local minima / maxima detection over a sliding circular window
//	  • circular smoothing, offsetting ("start from k") and reversal
//	  • linear resampling to a new length
//	  • sub-region extraction over (possibly wrapping) index ranges
//	  • best-fit rotation and squared-difference comparison
//
// ✨ Guarantees:
//   - Every operation returns a new *Profile; a Profile is never mutated after
//     construction, so it is safe to share between goroutines.
//   - Index arithmetic wraps with ring.Wrap; nothing here panics on caller input.
//   - Failures return the sentinel errors declared in errors.go, wrapped with
//     the operation name; match them with errors.Is.
//
// ⚙️ Usage:
//
//	p, err := profile.New([]float64{3, 1, 2, 5, 4})
//	if err != nil { … }
//	rotated, _ := p.StartFrom(2)      // [2 5 4 3 1]
//	k, _ := p.BestFitOffset(rotated)  // 2: p.StartFrom(2) lines up with rotated
//
// Complexity: element-wise operations are O(N); Smooth, Deltas and the
// extrema detectors are O(N·w); BestFitOffset is O(N²) over the full range.
package profile
