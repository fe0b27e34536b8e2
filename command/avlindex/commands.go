// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that need neither the configuration file nor the index
//
// returns false if the first argument is not one of these commands,
// in which case the arguments are script files
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--watch] [--key-type=integer|string] --config-file=FILE [command|SCRIPT...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n\n")

		fmt.Printf("otherwise each argument is a script file to run, stdin if none\n\n")
		fmt.Printf("script operations:\n\n")
		fmt.Printf("  insert KEY...                       - add keys\n")
		fmt.Printf("  remove KEY...                       - delete keys\n")
		fmt.Printf("  find KEY                            - show where a key was inserted\n")
		fmt.Printf("  count | height | empty              - size of the index\n")
		fmt.Printf("  min | max                           - lowest or highest key\n")
		fmt.Printf("  range LOW HIGH                      - keys between LOW and HIGH inclusive\n")
		fmt.Printf("  list | print                        - all keys in order, or as a tree\n")
		fmt.Printf("  check | stats                       - verify the tree, show counters\n")
		fmt.Printf("\n")

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration command handler
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands are script files
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}
