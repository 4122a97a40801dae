package scheduling

// Overlaps reports whether the half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// StepRange returns the ascending sequence of candidate start offsets from start
// to end inclusive, step minutes apart. Returns nil when the range is empty or the
// step is not positive.
func StepRange(start, end, step int) []int {
	if step <= 0 || end < start {
		return nil
	}
	var points []int
	for t := start; t <= end; t += step {
		points = append(points, t)
	}
	return points
}
