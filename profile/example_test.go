package profile_test

import (
	"fmt"

	"github.com/katalvlaran/cellprof/profile"
)

// ExampleProfile_StartFrom re-anchors a profile so that index 0 is a chosen
// landmark, then recovers the rotation with BestFitOffset.
func ExampleProfile_StartFrom() {
	p, _ := profile.New([]float64{3, 1, 2, 5, 4})

	rotated := p.StartFrom(2)
	fmt.Println(rotated)

	k, _ := p.BestFitOffset(rotated)
	fmt.Println("best fit offset:", k)

	// Output:
	// [2, 5, 4, 3, 1]
	// best fit offset: 2
}

// ExampleProfile_LocalMinima finds the single valley of a profile.
func ExampleProfile_LocalMinima() {
	p, _ := profile.New([]float64{5, 4, 3, 2, 1, 2, 3, 4, 5, 6})

	minima, _ := p.LocalMinima(3)
	fmt.Println("minima at:", minima.Indexes())

	i, _ := p.IndexOfMin(minima)
	v, _ := p.At(i)
	fmt.Println("deepest:", i, v)

	// Output:
	// minima at: [4]
	// deepest: 4 1
}
