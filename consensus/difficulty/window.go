package difficulty

import (
	"sort"
	"time"

	"github.com/NorthLauderdale/Onecc/util/mstime"
	"github.com/NorthLauderdale/Onecc/wire"
	"github.com/pkg/errors"
)

// TargetTimestamp is the projection of a block header onto the two fields
// difficulty retargeting consumes. It is used when full headers are
// unnecessary, such as when validating a pending block whose own header has
// not been assembled yet.
type TargetTimestamp struct {
	// Bits is the header's difficulty target in compact representation.
	Bits uint32

	// Timestamp is the header's timestamp at millisecond precision.
	Timestamp time.Time
}

// UnixMilliTimestamp returns the timestamp as a unix timestamp in
// milliseconds.
func (p *TargetTimestamp) UnixMilliTimestamp() int64 {
	return mstime.TimeToUnixMilli(p.Timestamp)
}

// checkWindowLength reports a RuleError unless got is exactly the
// DifficultyAdjustmentWindowSize+1 headers the engine requires. It runs
// before any arithmetic so a miscounted window can never produce a
// plausible-looking target.
func (m *Manager) checkWindowLength(got int) error {
	expected := int(m.params.DifficultyAdjustmentWindowSize) + 1
	if got != expected {
		return errors.Wrapf(ErrWrongWindowLength,
			"expected a window of %d headers, got %d", expected, got)
	}
	return nil
}

// stripHeaderWindow reduces a full header window to the ascending-by-height
// sequence of (bits, timestamp) pairs retargeting operates on. The input
// slice is not modified; sorting, when needed, happens on a copy. The sort
// compares heights only and is stable, so equal-height headers keep their
// relative order.
func stripHeaderWindow(window []*wire.BlockHeader) []TargetTimestamp {
	if !sort.SliceIsSorted(window, func(i, j int) bool {
		return window[i].Height < window[j].Height
	}) {
		sorted := make([]*wire.BlockHeader, len(window))
		copy(sorted, window)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Height < sorted[j].Height
		})
		window = sorted
	}

	stripped := make([]TargetTimestamp, len(window))
	for i, header := range window {
		stripped[i] = TargetTimestamp{Bits: header.Bits, Timestamp: header.Timestamp}
	}
	return stripped
}
