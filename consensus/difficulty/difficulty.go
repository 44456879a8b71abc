// Package difficulty implements Onecc's consensus difficulty retargeting.
//
// Given a sliding window of DifficultyAdjustmentWindowSize+1 recent block
// headers, the package computes the compact difficulty target the next block
// must satisfy and verifies that a candidate block's claimed target matches
// the value every other node would compute from the same window. The whole
// computation is defined in exact integer arithmetic so that independent
// implementations cannot diverge, and every function here is a pure function
// of its window and the network parameters, safe for concurrent use.
package difficulty

import (
	"math/big"

	"github.com/NorthLauderdale/Onecc/chaincfg"
	"github.com/NorthLauderdale/Onecc/util"
	"github.com/NorthLauderdale/Onecc/wire"
	"github.com/pkg/errors"
)

// Tempering coefficients of the retarget filter. The observed window solve
// time is blended with the configured baseline as
//
//	tempered = 3/4 * N * targetTimePerBlock + 2523/10000 * solveTime
//
// weighting the baseline more heavily than the observation so the target
// adjusts smoothly instead of oscillating after a burst of fast or slow
// blocks.
const (
	baselineNumerator    = 3
	baselineDenominator  = 4
	solveTimeNumerator   = 2523
	solveTimeDenominator = 10000
)

// Manager computes and verifies difficulty targets for one Onecc network.
// It holds no state beyond the network parameters and is safe for concurrent
// use by multiple validation goroutines.
type Manager struct {
	params *chaincfg.Params
}

// NewManager returns a difficulty manager for the given network parameters.
func NewManager(params *chaincfg.Params) *Manager {
	return &Manager{params: params}
}

// RequiredTargetBits calculates the compact difficulty target required for
// the block following the newest header in window. The window must hold
// exactly DifficultyAdjustmentWindowSize+1 headers; it is sorted ascending
// by height first if the caller supplied it out of order.
func (m *Manager) RequiredTargetBits(window []*wire.BlockHeader) (uint32, error) {
	if err := m.checkWindowLength(len(window)); err != nil {
		return 0, err
	}
	return m.requiredTargetBits(stripHeaderWindow(window))
}

// RequiredTargetBitsFromStripped is the stripped-window form of
// RequiredTargetBits. The window must already be ordered ascending by
// height, since the stripped pairs carry no height to sort by.
func (m *Manager) RequiredTargetBitsFromStripped(window []TargetTimestamp) (uint32, error) {
	if err := m.checkWindowLength(len(window)); err != nil {
		return 0, err
	}
	return m.requiredTargetBits(window)
}

func (m *Manager) requiredTargetBits(window []TargetTimestamp) (uint32, error) {
	newTarget, err := m.requiredTarget(window)
	if err != nil {
		return 0, err
	}

	// The network never allows a target above (a difficulty below) the
	// configured ceiling.
	if newTarget.Cmp(m.params.PowMax) > 0 {
		return m.params.PowMaxBits, nil
	}

	newTargetBits := util.BigToCompact(newTarget)
	log.Tracef("required target for the next block is 0x%08x", newTargetBits)
	return newTargetBits, nil
}

// requiredTarget computes the retarget value before the ceiling cap is
// applied:
//
//	newTarget = tempered * K div (targetTimePerBlock * capacity)
//
// where K = PowMax * 2^32 preserves precision across the divisions. The
// result can exceed PowMax when blocks arrived slower than desired; callers
// apply the cap.
func (m *Manager) requiredTarget(window []TargetTimestamp) (*big.Int, error) {
	k := scalingFactor(m.params.PowMax)

	capacity, err := windowCapacity(window, k)
	if err != nil {
		return nil, err
	}
	if capacity.Sign() == 0 {
		// Unreachable for targets in the codec's domain: every target
		// of at most PowMax contributes at least 2^32 to the sum.
		return nil, errors.Wrapf(ErrZeroWindowCapacity,
			"estimated capacity over a window of %d headers is zero", len(window))
	}

	tempered := m.temperedSolveTime(m.windowSolveTime(window))

	newTarget := new(big.Int).Mul(tempered, k)
	denominator := new(big.Int).Mul(
		big.NewInt(m.params.TargetTimePerBlock.Milliseconds()), capacity)
	return newTarget.Div(newTarget, denominator), nil
}

// temperedSolveTime applies the retarget filter to the total clamped window
// solve time, in milliseconds. The observed term uses big.Int floor division
// because the total may be negative, and flooring rather than truncating
// toward zero is what every node must agree on.
func (m *Manager) temperedSolveTime(totalSolveTime int64) *big.Int {
	windowSize := int64(m.params.DifficultyAdjustmentWindowSize)
	desiredMillis := m.params.TargetTimePerBlock.Milliseconds()

	baseline := baselineNumerator * windowSize * desiredMillis / baselineDenominator
	observed := big.NewInt(solveTimeNumerator * totalSolveTime)
	observed.Div(observed, big.NewInt(solveTimeDenominator))
	return observed.Add(observed, big.NewInt(baseline))
}
