package entity

// GroundYAt returns the ground height at x: the first segment containing x
// wins, otherwise defaultY. Segments need not be sorted.
func GroundYAt(x, defaultY float64, segments []GroundSegment) float64 {
	for _, s := range segments {
		if s.Contains(x) {
			return s.GroundY
		}
	}
	return defaultY
}
