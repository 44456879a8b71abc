package difficulty

// solveTimeClampFactor bounds how far above the desired block time a single
// observed interval may count. One stalled or maliciously delayed block can
// therefore contribute at most 6 desired block times to the window total.
const solveTimeClampFactor = 6

// clampSolveTime clamps a raw inter-block time delta, in milliseconds, into
// [-FutureBlockTimeLimit, 6*TargetTimePerBlock].
//
// The lower bound is deliberately the negation of the future time limit
// rather than zero: a header may carry a timestamp up to that far ahead of
// its successor's, so out-of-order timestamps within that tolerance reduce
// the window total instead of being discarded.
func (m *Manager) clampSolveTime(raw int64) int64 {
	lower := -m.params.FutureBlockTimeLimit.Milliseconds()
	upper := solveTimeClampFactor * m.params.TargetTimePerBlock.Milliseconds()
	if raw < lower {
		return lower
	}
	if raw > upper {
		return upper
	}
	return raw
}

// windowSolveTime returns the total clamped solve time, in milliseconds,
// across the N consecutive intervals of an ascending-by-height window of N+1
// headers. The window length has already been validated by the caller.
func (m *Manager) windowSolveTime(window []TargetTimestamp) int64 {
	total := int64(0)
	for i := 1; i < len(window); i++ {
		raw := window[i].UnixMilliTimestamp() - window[i-1].UnixMilliTimestamp()
		total += m.clampSolveTime(raw)
	}
	return total
}
