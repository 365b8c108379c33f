// Package record defines the persisted shape of segments and segmented
// profiles. Records are plain values with json and yaml tags; conversion to
// and from live engine types lives in the segment and segmented packages.
package record

// Segment is the persisted form of a segment and its merge provenance.
type Segment struct {
	ID       string    `json:"id" yaml:"id"`
	Start    int       `json:"start" yaml:"start"`
	End      int       `json:"end" yaml:"end"`
	RingSize int       `json:"ringSize" yaml:"ringSize"`
	Locked   bool      `json:"locked" yaml:"locked"`
	Children []Segment `json:"children,omitempty" yaml:"children,omitempty"`
}

// SegmentedProfile is the persisted form of a segmented profile.
type SegmentedProfile struct {
	Samples  []float64 `json:"samples" yaml:"samples"`
	Segments []Segment `json:"segments" yaml:"segments"`
}
