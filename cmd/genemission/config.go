package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NorthLauderdale/Onecc/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type configFlags struct {
	ShowVersion      bool   `short:"V" long:"version" description:"Display version information and exit"`
	OutFile          string `short:"o" long:"out" description:"Path of the generated Go source file" default:"emission.go"`
	Package          string `long:"pkg" description:"Package name for the generated file" default:"chaincfg"`
	InitialSubsidy   uint64 `long:"initial-subsidy" description:"Coinbase subsidy of the first era, in base units" default:"50000000000"`
	DecayNumerator   uint64 `long:"decay-numerator" description:"Numerator of the per-era subsidy decay ratio" default:"3"`
	DecayDenominator uint64 `long:"decay-denominator" description:"Denominator of the per-era subsidy decay ratio" default:"4"`
	EraLength        uint64 `long:"era-length" description:"Number of blocks in one emission era" default:"175200"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	if cfg.InitialSubsidy == 0 {
		return nil, errors.New("--initial-subsidy must be positive")
	}
	if cfg.DecayNumerator == 0 || cfg.DecayDenominator == 0 {
		return nil, errors.New("the decay ratio must be positive")
	}
	if cfg.DecayNumerator >= cfg.DecayDenominator {
		return nil, errors.Errorf("decay ratio %d/%d does not decay; the schedule would never end",
			cfg.DecayNumerator, cfg.DecayDenominator)
	}
	if cfg.EraLength == 0 {
		return nil, errors.New("--era-length must be positive")
	}

	return cfg, nil
}
