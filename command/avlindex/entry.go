// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
)

// supported key types
const (
	integerKeys = "integer"
	stringKeys  = "string"
)

// an element of the index
//
// the tree holds the pointer, so find returns the entry created by
// the insert that added the key
type entry struct {
	key    string // as written in the script
	number int64  // only for integer keys
	source string // script that inserted it
	line   int
}

func (e *entry) String() string {
	return e.key
}

// where the entry was inserted
func (e *entry) origin() string {
	return fmt.Sprintf("%s:%d", e.source, e.line)
}

type keyParser struct {
	kind string
}

func newKeyParser(kind string) (keyParser, error) {
	switch strings.ToLower(kind) {
	case integerKeys:
		return keyParser{kind: integerKeys}, nil
	case stringKeys:
		return keyParser{kind: stringKeys}, nil
	default:
		return keyParser{}, fault.ErrInvalidKeyType
	}
}

// create an entry from a script token
func (k keyParser) parse(text string, source string, line int) (*entry, error) {
	e := &entry{
		key:    text,
		source: source,
		line:   line,
	}
	if integerKeys == k.kind {
		n, err := strconv.ParseInt(text, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		e.number = n
	}
	return e, nil
}

func (k keyParser) comparator() avl.Comparator[*entry] {
	if integerKeys == k.kind {
		return compareIntegers
	}
	return compareStrings
}

func compareIntegers(candidate *entry, existing *entry) int {
	switch {
	case candidate.number < existing.number:
		return -1
	case candidate.number > existing.number:
		return +1
	default:
		return 0
	}
}

func compareStrings(candidate *entry, existing *entry) int {
	return strings.Compare(candidate.key, existing.key)
}
