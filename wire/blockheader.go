// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"time"

	"github.com/NorthLauderdale/Onecc/util/mstime"
)

// BlockHeader defines information about a block. Only the fields consulted by
// consensus difficulty retargeting are carried here; serialization and
// propagation of full headers belong to the surrounding node software.
type BlockHeader struct {
	// Height of the block within the chain. The genesis block has height 0.
	Height uint64

	// Time the block was created. Millisecond precision; see util/mstime.
	Timestamp time.Time

	// Difficulty target for the block in compact representation.
	Bits uint32
}

// UnixMilliTimestamp returns the header timestamp as a unix timestamp in
// milliseconds. All consensus time arithmetic is done in milliseconds.
func (h *BlockHeader) UnixMilliTimestamp() int64 {
	return mstime.TimeToUnixMilli(h.Timestamp)
}
