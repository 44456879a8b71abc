package difficulty

import (
	"github.com/NorthLauderdale/Onecc/wire"
)

// CheckNextBits verifies that a candidate block's claimed difficulty bits
// equal the value recomputed over the window its retarget is based on. On
// inequality the returned error is a TargetMismatchError carrying both the
// claimed and the expected bits; the function has no other failure mode of
// its own and performs no mutation.
func (m *Manager) CheckNextBits(claimedBits uint32, window []*wire.BlockHeader) error {
	if err := m.checkWindowLength(len(window)); err != nil {
		return err
	}
	return m.checkNextBits(claimedBits, stripHeaderWindow(window))
}

// CheckNextBitsFromStripped is the stripped-window form of CheckNextBits,
// used when the candidate has not been assembled into a full header yet.
// The window must already be ordered ascending by height.
func (m *Manager) CheckNextBitsFromStripped(claimedBits uint32, window []TargetTimestamp) error {
	if err := m.checkWindowLength(len(window)); err != nil {
		return err
	}
	return m.checkNextBits(claimedBits, window)
}

func (m *Manager) checkNextBits(claimedBits uint32, window []TargetTimestamp) error {
	expectedBits, err := m.requiredTargetBits(window)
	if err != nil {
		return err
	}
	if claimedBits != expectedBits {
		log.Debugf("rejecting candidate target: claimed 0x%08x, expected 0x%08x",
			claimedBits, expectedBits)
		return TargetMismatchError{ClaimedBits: claimedBits, ExpectedBits: expectedBits}
	}
	return nil
}
