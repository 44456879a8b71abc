// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/NorthLauderdale/Onecc/util"
)

// These variables are the chain proof-of-work ceiling parameters for each
// default network. Each ceiling is chosen so it survives a compact
// encode/decode cycle unchanged, which keeps the governance constant
// identical whether a node reads it from configuration or from a header.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowMax is the highest proof of work value an Onecc block can
	// have for the main network. It is the value 2^255 - 2^232, the
	// largest 255-bit value whose 23-bit compact mantissa is exact.
	mainPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), new(big.Int).Lsh(bigOne, 232))

	// testnetPowMax is the highest proof of work value an Onecc block can
	// have for the test network. It is the value 2^239 - 2^216.
	testnetPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 239), new(big.Int).Lsh(bigOne, 216))

	// simnetPowMax is the highest proof of work value an Onecc block can
	// have for the simulation test network. It is the value 2^255 - 2^232.
	simnetPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), new(big.Int).Lsh(bigOne, 232))
)

const (
	targetTimePerBlock = 3 * time.Minute

	// futureBlockTimeLimit is the maximum amount a block timestamp may be
	// ahead of a node's local clock before the node rejects the block. It
	// doubles as the lower clamp bound for per-interval solve times during
	// difficulty retargeting.
	futureBlockTimeLimit = 9 * time.Minute

	difficultyAdjustmentWindowSize = 17
)

// Params defines an Onecc network by its consensus parameters. These
// parameters govern the behavior of the difficulty retargeting engine and
// must be identical across every node of a network, otherwise independently
// recomputed targets diverge and the network forks.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PowMax defines the highest allowed proof of work value for a block
	// as an arbitrary precision integer. It is the easiest target the
	// network ever allows; retargeting results are capped at this value.
	PowMax *big.Int

	// PowMaxBits is PowMax in compact representation.
	PowMaxBits uint32

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// FutureBlockTimeLimit is the maximum amount a block timestamp may be
	// ahead of the local clock. Its negation is the lower clamp bound for
	// solve-time intervals during retargeting.
	FutureBlockTimeLimit time.Duration

	// DifficultyAdjustmentWindowSize is the number of consecutive block
	// intervals inspected by the retargeting engine. The engine consumes
	// windows of DifficultyAdjustmentWindowSize+1 headers.
	DifficultyAdjustmentWindowSize uint64
}

// MainnetParams defines the network parameters for the main Onecc network.
var MainnetParams = Params{
	Name:                           "onecc-mainnet",
	PowMax:                         mainPowMax,
	PowMaxBits:                     util.BigToCompact(mainPowMax),
	TargetTimePerBlock:             targetTimePerBlock,
	FutureBlockTimeLimit:           futureBlockTimeLimit,
	DifficultyAdjustmentWindowSize: difficultyAdjustmentWindowSize,
}

// TestnetParams defines the network parameters for the test Onecc network.
var TestnetParams = Params{
	Name:                           "onecc-testnet",
	PowMax:                         testnetPowMax,
	PowMaxBits:                     util.BigToCompact(testnetPowMax),
	TargetTimePerBlock:             time.Minute,
	FutureBlockTimeLimit:           3 * time.Minute,
	DifficultyAdjustmentWindowSize: difficultyAdjustmentWindowSize,
}

// SimnetParams defines the network parameters for the simulation test
// network. The tiny retargeting window makes single-interval effects directly
// observable, which the consensus tests rely on.
var SimnetParams = Params{
	Name:                           "onecc-simnet",
	PowMax:                         simnetPowMax,
	PowMaxBits:                     util.BigToCompact(simnetPowMax),
	TargetTimePerBlock:             targetTimePerBlock,
	FutureBlockTimeLimit:           futureBlockTimeLimit,
	DifficultyAdjustmentWindowSize: 2,
}
