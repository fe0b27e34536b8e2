// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/index"
)

// Indexer - the index operations used by scripts
type Indexer interface {
	Insert(*entry) error
	Remove(*entry) (*entry, error)
	Find(*entry) (*entry, error)
	Count() int
	Height() int
	IsEmpty() bool
	Min() (*entry, error)
	Max() (*entry, error)
	ForEach(avl.Operation[*entry]) error
	Range(*entry, *entry, avl.Operation[*entry]) error
	Check() error
	Print(io.Writer) int
	Statistics() index.Statistics
}

// runs script lines against an index
type runner struct {
	ix       Indexer
	keys     keyParser
	out      io.Writer
	log      *logger.L
	echo     bool // copy each operation to out before its result
	failures int  // total failed operations
}

func newRunner(ix Indexer, keys keyParser, out io.Writer, log *logger.L) *runner {
	return &runner{
		ix:   ix,
		keys: keys,
		out:  out,
		log:  log,
	}
}

// run each file in turn, stops at the first file that cannot be read
func (r *runner) runFiles(names []string) error {
	for _, name := range names {
		if err := r.runFile(name); nil != err {
			return err
		}
	}
	return nil
}

func (r *runner) runFile(name string) error {
	f, err := os.Open(name)
	if nil != err {
		return err
	}
	defer f.Close()

	return r.run(name, f)
}

// execute every line from in, failed operations are reported and
// counted but do not stop the script
func (r *runner) run(source string, in io.Reader) error {
	r.log.Infof("run: %s", source)
	before := r.failures

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line += 1

		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if 0 == len(fields) {
			continue
		}
		if r.echo {
			fmt.Fprintf(r.out, "> %s\n", strings.Join(fields, " "))
		}
		r.execute(source, line, strings.ToLower(fields[0]), fields[1:])
	}

	r.log.Infof("run: %s  lines: %d  failures: %d", source, line, r.failures-before)
	return scanner.Err()
}

// one operation
func (r *runner) execute(source string, line int, operation string, arguments []string) {

	switch operation {
	case "insert":
		if 0 == len(arguments) {
			r.fail(source, line, operation, fault.ErrMissingArguments)
			return
		}
		for _, k := range arguments {
			label := operation + " " + k
			e, err := r.keys.parse(k, source, line)
			if nil == err {
				err = r.ix.Insert(e)
			}
			if nil != err {
				r.fail(source, line, label, err)
				continue
			}
			r.printf("%s: ok\n", label)
		}

	case "remove":
		if 0 == len(arguments) {
			r.fail(source, line, operation, fault.ErrMissingArguments)
			return
		}
		for _, k := range arguments {
			label := operation + " " + k
			e, err := r.keys.parse(k, source, line)
			if nil == err {
				e, err = r.ix.Remove(e)
			}
			if nil != err {
				r.fail(source, line, label, err)
				continue
			}
			r.printf("%s: ok (inserted at %s)\n", label, e.origin())
		}

	case "find":
		if !r.arguments(source, line, operation, arguments, 1) {
			return
		}
		label := operation + " " + arguments[0]
		e, err := r.keys.parse(arguments[0], source, line)
		if nil == err {
			e, err = r.ix.Find(e)
		}
		if nil != err {
			r.fail(source, line, label, err)
			return
		}
		r.printf("%s: %s at %s\n", label, e, e.origin())

	case "count":
		if r.arguments(source, line, operation, arguments, 0) {
			r.printf("%s: %d\n", operation, r.ix.Count())
		}

	case "height":
		if r.arguments(source, line, operation, arguments, 0) {
			r.printf("%s: %d\n", operation, r.ix.Height())
		}

	case "empty":
		if r.arguments(source, line, operation, arguments, 0) {
			r.printf("%s: %s\n", operation, strconv.FormatBool(r.ix.IsEmpty()))
		}

	case "min", "max":
		if !r.arguments(source, line, operation, arguments, 0) {
			return
		}
		get := r.ix.Min
		if "max" == operation {
			get = r.ix.Max
		}
		e, err := get()
		if nil != err {
			r.fail(source, line, operation, err)
			return
		}
		r.printf("%s: %s\n", operation, e)

	case "range":
		if !r.arguments(source, line, operation, arguments, 2) {
			return
		}
		label := operation + " " + arguments[0] + " " + arguments[1]
		low, err := r.keys.parse(arguments[0], source, line)
		if nil != err {
			r.fail(source, line, label, err)
			return
		}
		high, err := r.keys.parse(arguments[1], source, line)
		if nil != err {
			r.fail(source, line, label, err)
			return
		}
		keys := []string{}
		err = r.ix.Range(low, high, func(e *entry) error {
			keys = append(keys, e.key)
			return nil
		})
		if nil != err {
			r.fail(source, line, label, err)
			return
		}
		r.printList(label, keys)

	case "list":
		if !r.arguments(source, line, operation, arguments, 0) {
			return
		}
		keys := []string{}
		err := r.ix.ForEach(func(e *entry) error {
			keys = append(keys, e.key)
			return nil
		})
		if nil != err {
			r.fail(source, line, operation, err)
			return
		}
		r.printList(operation, keys)

	case "print":
		if r.arguments(source, line, operation, arguments, 0) {
			depth := r.ix.Print(r.out)
			r.printf("%s: depth %d\n", operation, depth)
		}

	case "check":
		if !r.arguments(source, line, operation, arguments, 0) {
			return
		}
		if err := r.ix.Check(); nil != err {
			r.fail(source, line, operation, err)
			return
		}
		r.printf("%s: ok\n", operation)

	case "stats":
		if !r.arguments(source, line, operation, arguments, 0) {
			return
		}
		b, err := json.Marshal(r.ix.Statistics())
		if nil != err {
			r.fail(source, line, operation, err)
			return
		}
		r.printf("%s: %s\n", operation, b)

	default:
		r.fail(source, line, operation, fault.ErrUnknownOperation)
	}
}

// check the argument count, reports a failure on mismatch
func (r *runner) arguments(source string, line int, operation string, arguments []string, expected int) bool {
	switch {
	case len(arguments) < expected:
		r.fail(source, line, operation, fault.ErrMissingArguments)
		return false
	case len(arguments) > expected:
		r.fail(source, line, operation, fault.ErrTooManyArguments)
		return false
	}
	return true
}

func (r *runner) fail(source string, line int, label string, err error) {
	r.failures += 1
	r.log.Warnf("%s:%d: %s  error: %s", source, line, label, err)
	r.printf("%s: error: %s\n", label, err)
}

func (r *runner) printList(label string, keys []string) {
	if 0 == len(keys) {
		r.printf("%s:\n", label)
		return
	}
	r.printf("%s: %s\n", label, strings.Join(keys, " "))
}

func (r *runner) printf(format string, arguments ...interface{}) {
	fmt.Fprintf(r.out, format, arguments...)
}
