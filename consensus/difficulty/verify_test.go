package difficulty

import (
	"testing"

	"github.com/NorthLauderdale/Onecc/chaincfg"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestCheckNextBitsRoundTrip(t *testing.T) {
	// For any valid window, verifying the value the engine itself computed
	// must succeed.
	manager := NewManager(&chaincfg.SimnetParams)
	windows := []struct {
		bits         []uint32
		timestampsMs []int64
	}{
		{repeat(chaincfg.SimnetParams.PowMaxBits, 3), []int64{0, 180000, 360000}},
		{repeat(midTargetBits, 3), []int64{0, 60000, 120000}},
		{repeat(midTargetBits, 3), []int64{0, 540000, 1080000}},
		{[]uint32{midTargetBits, 0x1d00eeee, 0x1d00dddd}, []int64{0, 150000, 410000}},
		// Backdated timestamps drive the tempered solve time negative;
		// the round trip must hold even then.
		{repeat(midTargetBits, 3), []int64{1080000, 540000, 0}},
	}

	for _, tw := range windows {
		window := testWindow(t, tw.bits, tw.timestampsMs)
		bits, err := manager.RequiredTargetBits(window)
		if err != nil {
			t.Fatalf("RequiredTargetBits: unexpected error %v on window %s",
				err, spew.Sdump(tw))
		}
		if err := manager.CheckNextBits(bits, window); err != nil {
			t.Errorf("CheckNextBits rejected the engine's own value 0x%08x: %v\nwindow: %s",
				bits, err, spew.Sdump(tw))
		}
	}
}

func TestCheckNextBitsMismatch(t *testing.T) {
	manager := NewManager(&chaincfg.SimnetParams)
	window := testWindow(t, repeat(midTargetBits, 3), []int64{0, 150000, 410000})

	expectedBits, err := manager.RequiredTargetBits(window)
	if err != nil {
		t.Fatalf("RequiredTargetBits: unexpected error %v", err)
	}

	claimedBits := expectedBits + 1
	err = manager.CheckNextBits(claimedBits, window)
	if err == nil {
		t.Fatal("CheckNextBits accepted a wrong claimed target")
	}

	var mismatch TargetMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("CheckNextBits: got %T (%v), want TargetMismatchError", err, err)
	}
	if mismatch.ClaimedBits != claimedBits {
		t.Errorf("mismatch carries claimed bits 0x%08x, want 0x%08x",
			mismatch.ClaimedBits, claimedBits)
	}
	if mismatch.ExpectedBits != expectedBits {
		t.Errorf("mismatch carries expected bits 0x%08x, want 0x%08x",
			mismatch.ExpectedBits, expectedBits)
	}
}

func TestCheckNextBitsFromStripped(t *testing.T) {
	manager := NewManager(&chaincfg.SimnetParams)
	window := testWindow(t, repeat(midTargetBits, 3), []int64{0, 150000, 410000})
	stripped := stripHeaderWindow(window)

	expectedBits, err := manager.RequiredTargetBitsFromStripped(stripped)
	if err != nil {
		t.Fatalf("RequiredTargetBitsFromStripped: unexpected error %v", err)
	}
	if err := manager.CheckNextBitsFromStripped(expectedBits, stripped); err != nil {
		t.Errorf("CheckNextBitsFromStripped rejected the engine's own value: %v", err)
	}
	if err := manager.CheckNextBitsFromStripped(expectedBits^1, stripped); err == nil {
		t.Error("CheckNextBitsFromStripped accepted a wrong claimed target")
	}
}
