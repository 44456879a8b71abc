package difficulty

import (
	"math/big"

	"github.com/NorthLauderdale/Onecc/util"
	"github.com/pkg/errors"
)

// capacityScalingBits is the power of two the proof-of-work ceiling is
// scaled by before dividing by individual targets. Without the scaling,
// integer division of PowMax by a target close to PowMax would collapse to
// a single bit of precision.
const capacityScalingBits = 32

// scalingFactor returns K = PowMax * 2^32, the precision-preserving
// multiplier used by the capacity estimate. It is recomputed per call from
// the governance ceiling and never cached across calls.
func scalingFactor(powMax *big.Int) *big.Int {
	return new(big.Int).Lsh(powMax, capacityScalingBits)
}

// windowCapacity estimates total network mining capacity over the window as
// the sum of K div target across the N newest headers. The oldest header is
// excluded: it only anchors the first interval's timestamp and is not a
// capacity sample. All division is floor division on big integers.
func windowCapacity(window []TargetTimestamp, k *big.Int) (*big.Int, error) {
	sum := new(big.Int)
	quotient := new(big.Int)
	for _, pair := range window[1:] {
		target := util.CompactToBig(pair.Bits)
		if target.Sign() <= 0 {
			return nil, errors.Wrapf(ErrNonPositiveTarget,
				"compact bits 0x%08x decode to the non-positive target %d",
				pair.Bits, target)
		}
		sum.Add(sum, quotient.Div(k, target))
	}
	return sum, nil
}
