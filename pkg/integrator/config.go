package integrator

// Config holds the tracer tuning constants
type Config struct {
	ImportanceThreshold float64 // Nodes below this importance become leaves
	ColorContribution   float64 // Weight of each child's color in its parent
	ShadowRays          int     // Shadow samples per area light
	RayOffset           float64 // Normal offset of shadow ray origins
}

// DefaultConfig returns the calibrated defaults
func DefaultConfig() Config {
	return Config{
		ImportanceThreshold: 0.1,
		ColorContribution:   0.3,
		ShadowRays:          1,
		RayOffset:           3e-2,
	}
}
