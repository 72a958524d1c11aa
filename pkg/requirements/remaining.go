package requirements

// RemainingRequirements subtracts completed quantities from total quantities,
// clamping at zero. Items whose remaining quantity would be zero or negative
// are omitted entirely, and keys present only in completed (over-completion)
// never appear in the output.
func RemainingRequirements(total, completed ItemRequirements) ItemRequirements {
	remaining := ItemRequirements{}
	for id, qty := range total {
		left := qty - completed[id]
		if left > 0 {
			remaining[id] = left
		}
	}
	return remaining
}
