package repo

// pageBounds converts skip/limit into slice bounds over a result of the
// given length. A limit of zero or less means no cap.
func pageBounds(length, skip, limit int) (int, int) {
	start := clamp(skip, 0, length)
	end := length
	if limit > 0 {
		end = clamp(start+limit, start, length)
	}
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
