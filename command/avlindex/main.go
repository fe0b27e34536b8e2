// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/background"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/index"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "key-type", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	variables := map[string]string{}
	if n := len(options["key-type"]); n > 1 {
		exitwithstatus.Message("%s: only one key-type option is allowed, %d were detected", program, n)
	} else if 1 == n {
		variables["key_type"] = options["key-type"][0]
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}
	if 1 == len(options["key-type"]) {
		theConfiguration.KeyType = options["key-type"][0]
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	keys, err := newKeyParser(theConfiguration.KeyType)
	if nil != err {
		exitwithstatus.Message("%s: key type: %q  error: %s", program, theConfiguration.KeyType, err)
	}

	watch := len(options["watch"]) > 0
	if watch && 0 == len(arguments) {
		exitwithstatus.Message("%s: watch requires at least one script file", program)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	ix, err := index.New("keys", keys.comparator(), theConfiguration.MaximumNodes)
	if nil != err {
		log.Criticalf("index create error: %s", err)
		exitwithstatus.Message("%s: index create error: %s", program, err)
	}
	defer ix.Close()

	// optional periodic statistics
	var processes background.Processes
	if theConfiguration.ReportInterval > 0 {
		interval := time.Duration(theConfiguration.ReportInterval) * time.Second
		processes = append(processes, newReporter(logger.New("reporter"), interval, ix))
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	r := newRunner(ix, keys, os.Stdout, logger.New("script"))
	if len(options["verbose"]) > 0 {
		r.echo = true
	}

	if 0 == len(arguments) {
		err = r.run("stdin", os.Stdin)
	} else {
		err = r.runFiles(arguments)
	}
	if nil != err {
		log.Errorf("script error: %s", err)
		fmt.Fprintf(os.Stderr, "%s: %s\n", program, err)
	}

	if watch {
		shutdown := make(chan struct{})
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-ch
			log.Infof("received signal: %v", sig)
			close(shutdown)
		}()

		if err := watchScripts(logger.New("watcher"), arguments, r, shutdown); nil != err {
			log.Errorf("watch error: %s", err)
			fmt.Fprintf(os.Stderr, "%s: watch error: %s\n", program, err)
		}
	}

	if nil != err || r.failures > 0 {
		log.Warnf("failed operations: %d", r.failures)
		exitwithstatus.Exit(1) // deferred cleanup runs while unwinding
	}
}
