// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/NorthLauderdale/Onecc/util"
)

// TestPowMaxCompactRoundTrip ensures each network's proof-of-work ceiling is
// exactly representable in compact form. Retargeting caps at PowMax and then
// encodes, so a lossy ceiling would make the capped target differ from
// PowMaxBits and reject every block mined at minimum difficulty.
func TestPowMaxCompactRoundTrip(t *testing.T) {
	for _, params := range []*Params{&MainnetParams, &TestnetParams, &SimnetParams} {
		decoded := util.CompactToBig(params.PowMaxBits)
		if decoded.Cmp(params.PowMax) != 0 {
			t.Errorf("%s: PowMax is not exactly representable in compact form: "+
				"%064x != %064x", params.Name, params.PowMax, decoded)
		}
	}
}

func TestParamsSanity(t *testing.T) {
	for _, params := range []*Params{&MainnetParams, &TestnetParams, &SimnetParams} {
		if params.DifficultyAdjustmentWindowSize < 2 {
			t.Errorf("%s: difficulty window of %d intervals cannot anchor "+
				"a timestamp pair", params.Name, params.DifficultyAdjustmentWindowSize)
		}
		if params.TargetTimePerBlock.Milliseconds() <= 0 {
			t.Errorf("%s: non-positive target time per block", params.Name)
		}
		if params.FutureBlockTimeLimit.Milliseconds() <= 0 {
			t.Errorf("%s: non-positive future block time limit", params.Name)
		}
	}
}
