// Package dtw computes Dynamic Time Warping (DTW) distances between
// sample sequences and between whole profiles.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest monotone alignment of two sequences, letting one
//	stretch locally against the other. Two cell outlines whose landmarks sit
//	at slightly different fractions of the perimeter still align closely,
//	where a plain squared difference would punish every shifted sample.
//
// ✨ Key features:
//   - full-matrix mode: O(N·M) memory, optional alignment path
//   - two-row mode: O(M) memory, distance only
//   - Sakoe–Chiba band (|i−j| ≤ w), widened to |N−M| when needed
//   - slope penalty on horizontal / vertical steps
//   - CompareProfiles: rotate one profile onto the other with
//     profile.BestFitOffset, then measure DTW distance
//
// ⚙️ Usage:
//
//	res, err := dtw.Distance(a, b,
//	    dtw.WithWindow(10),
//	    dtw.WithSlopePenalty(0.5),
//	    dtw.WithPath(),
//	)
//	fmt.Println(res.Distance, res.Path)
//
// Complexity: O(N·M) time; memory per MemoryMode.
package dtw
