package integrator

// TraceStats counts what happened during one or more traces
type TraceStats struct {
	Traces     int // Primary rays traced
	Nodes      int // Path nodes created
	PeakLive   int // Largest number of nodes alive at once
	Leaves     int // Nodes resolved as leaves
	Escaped    int // Primary rays that left the scene
	Aborted    int // Traces abandoned because a secondary ray left the scene
	ShadowRays int // Shadow rays cast toward area lights
	Occluded   int // Shadow rays blocked before reaching their light
}

// Add accumulates other into s. PeakLive keeps the maximum.
func (s *TraceStats) Add(other TraceStats) {
	s.Traces += other.Traces
	s.Nodes += other.Nodes
	if other.PeakLive > s.PeakLive {
		s.PeakLive = other.PeakLive
	}
	s.Leaves += other.Leaves
	s.Escaped += other.Escaped
	s.Aborted += other.Aborted
	s.ShadowRays += other.ShadowRays
	s.Occluded += other.Occluded
}
