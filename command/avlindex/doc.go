// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlindex - load keys into a balanced ordered index and query it
//
// each script file (or stdin when none are given) holds one operation
// per line, anything after a '#' is ignored:
//
//   insert KEY...        add keys, duplicates are reported
//   remove KEY...        delete keys
//   find KEY             show where a key was inserted
//   count                number of keys
//   height               levels in the tree
//   empty                true if there are no keys
//   min                  lowest key
//   max                  highest key
//   range LOW HIGH       keys in the closed interval
//   list                 all keys in order
//   print                draw the tree
//   check                verify order and balance
//   stats                index counters as JSON
//
// keys are compared as strings or as signed 64 bit integers depending
// on the key_type configuration setting or the --key-type option.
//
// the exit status is non-zero if any operation failed.
package main
