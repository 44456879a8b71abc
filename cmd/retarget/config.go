package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NorthLauderdale/Onecc/chaincfg"
	"github.com/NorthLauderdale/Onecc/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	HeadersFile string `short:"f" long:"headers" description:"Path of a JSON file holding the header window, oldest to newest"`
	Verify      string `long:"verify" description:"Verify this claimed compact target (hex) against the window instead of only printing the computed one"`
	LogFile     string `long:"logfile" description:"Also write logs to this file, rotated at 10 MB"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"info"`
	Testnet     bool   `long:"testnet" description:"Use the test network parameters"`
	Simnet      bool   `long:"simnet" description:"Use the simulation test network parameters"`

	params *chaincfg.Params
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

	if cfg.HeadersFile == "" {
		return nil, errors.New("--headers is required")
	}
	if cfg.Testnet && cfg.Simnet {
		return nil, errors.New("--testnet and --simnet cannot both be specified")
	}
	switch {
	case cfg.Testnet:
		cfg.params = &chaincfg.TestnetParams
	case cfg.Simnet:
		cfg.params = &chaincfg.SimnetParams
	default:
		cfg.params = &chaincfg.MainnetParams
	}

	return cfg, nil
}
