// SPDX-License-Identifier: MIT

package segmented_test

import (
	"fmt"

	"github.com/katalvlaran/cellprof/profile"
	"github.com/katalvlaran/cellprof/segment"
	"github.com/katalvlaran/cellprof/segmented"
)

// Example splits an unsegmented ring of 100 samples, merges the halves back
// and re-anchors the result on index 25.
func Example() {
	p, _ := profile.Constant(1, 100)
	sp, _ := segmented.New(p)

	_ = sp.SplitSegment(segment.WholeRingID, 50, "A", "B")
	fmt.Println(sp.Segments())

	_ = sp.MergeSegments("B", "A", "C")
	c, _ := sp.Segment("C")
	fmt.Println(c, c.Length(), c.MergeSources())

	_ = sp.UnmergeSegment("C")
	fmt.Println(sp.StartFrom(25).Segments())
	// Output:
	// [A[0,50]/100 B[50,0]/100]
	// C[0,0]/100 101 [A[0,50]/100 B[50,0]/100]
	// [A[75,25]/100 B[25,75]/100]
}

// ExampleProfile_Interpolate doubles the ring; every boundary doubles too.
func ExampleProfile_Interpolate() {
	p, _ := profile.Constant(1, 100)
	sp, _ := segmented.New(p)
	_ = sp.SplitSegment(segment.WholeRingID, 40, "A", "B")

	big, _ := sp.Interpolate(200)
	fmt.Println(big.Size(), big.Segments())
	// Output:
	// 200 [A[0,80]/200 B[80,0]/200]
}
