package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestParseBits(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"0x1d00ffff", 0x1d00ffff, false},
		{"1d00ffff", 0x1d00ffff, false},
		{"0x207fffff", 0x207fffff, false},
		{"", 0, true},
		{"0x1d00ffff1", 0, true},
		{"banana", 0, true},
	}

	for _, test := range tests {
		got, err := parseBits(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("parseBits(%q): expected error status %t, got %t",
				test.in, test.wantErr, err != nil)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("parseBits(%q): got 0x%08x want 0x%08x", test.in, got, test.want)
		}
	}
}

func TestLoadHeaderWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.json")
	contents := `[
		{"height": 100, "timestampMs": 0, "bits": "0x1d00ffff"},
		{"height": 101, "timestampMs": 180000, "bits": "0x1d00eeee"},
		{"height": 102, "timestampMs": 360000, "bits": "0x1d00dddd"}
	]`
	if err := ioutil.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	window, err := loadHeaderWindow(path)
	if err != nil {
		t.Fatalf("loadHeaderWindow: unexpected error %v", err)
	}
	if len(window) != 3 {
		t.Fatalf("loadHeaderWindow: got %d headers, want 3", len(window))
	}
	if window[1].Height != 101 || window[1].Bits != 0x1d00eeee {
		t.Errorf("loadHeaderWindow: header 1 is %+v", window[1])
	}
	if window[2].UnixMilliTimestamp() != 360000 {
		t.Errorf("loadHeaderWindow: header 2 timestamp is %d ms, want 360000",
			window[2].UnixMilliTimestamp())
	}

	if _, err := loadHeaderWindow(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("loadHeaderWindow: expected an error for a missing file")
	}
}
