package dtw

import (
	"fmt"

	"github.com/katalvlaran/cellprof/profile"
)

// Comparison is the outcome of CompareProfiles: the rotation applied to the
// first profile and the DTW result after rotating.
type Comparison struct {
	Offset int
	Result
}

// CompareProfiles rotates a onto b with a.BestFitOffset(b) and returns the
// DTW distance between the rotated a and b. Profiles of different lengths
// are compared directly; DTW absorbs the difference.
func CompareProfiles(a, b *profile.Profile, opts ...Option) (Comparison, error) {
	if a == nil || b == nil {
		return Comparison{}, ErrEmptySequence
	}
	k, err := a.BestFitOffset(b)
	if err != nil {
		return Comparison{}, fmt.Errorf("CompareProfiles: %w", err)
	}
	res, err := Distance(a.StartFrom(k).Values(), b.Values(), opts...)
	if err != nil {
		return Comparison{}, fmt.Errorf("CompareProfiles: %w", err)
	}

	return Comparison{Offset: k, Result: res}, nil
}
