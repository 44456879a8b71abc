// retarget computes the difficulty target required for the block following a
// window of recent headers, the same computation every validating node runs.
// It is an operator debugging tool: feed it a header window exported from a
// node and it prints, or verifies, the expected next compact target.
package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/NorthLauderdale/Onecc/consensus/difficulty"
	"github.com/NorthLauderdale/Onecc/util"
	"github.com/NorthLauderdale/Onecc/util/mstime"
	"github.com/NorthLauderdale/Onecc/wire"
	"github.com/pkg/errors"
)

// headerRecord is one header of the JSON window file.
type headerRecord struct {
	Height      uint64 `json:"height"`
	TimestampMs int64  `json:"timestampMs"`
	Bits        string `json:"bits"`
}

func parseBits(s string) (uint32, error) {
	bits, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid compact bits %q", s)
	}
	return uint32(bits), nil
}

func loadHeaderWindow(path string) ([]*wire.BlockHeader, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", path)
	}

	var records []headerRecord
	if err := json.Unmarshal(contents, &records); err != nil {
		return nil, errors.Wrapf(err, "error parsing %s", path)
	}

	window := make([]*wire.BlockHeader, len(records))
	for i, record := range records {
		bits, err := parseBits(record.Bits)
		if err != nil {
			return nil, errors.Wrapf(err, "header at height %d", record.Height)
		}
		window[i] = &wire.BlockHeader{
			Height:    record.Height,
			Timestamp: mstime.UnixMilliToTime(record.TimestampMs),
			Bits:      bits,
		}
	}
	return window, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		initLogRotator(cfg.LogFile)
		defer logRotator.Close()
	}
	setLogLevels(cfg.DebugLevel)

	window, err := loadHeaderWindow(cfg.HeadersFile)
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
	log.Debugf("loaded a window of %d headers from %s on %s",
		len(window), cfg.HeadersFile, cfg.params.Name)

	manager := difficulty.NewManager(cfg.params)
	bits, err := manager.RequiredTargetBits(window)
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
	fmt.Printf("next target: 0x%08x (%064x)\n", bits, util.CompactToBig(bits))

	if cfg.Verify != "" {
		claimed, err := parseBits(cfg.Verify)
		if err != nil {
			log.Errorf("%s", err)
			os.Exit(1)
		}
		if err := manager.CheckNextBits(claimed, window); err != nil {
			log.Errorf("verification failed: %s", err)
			os.Exit(1)
		}
		fmt.Println("claimed target verified")
	}
}
