// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root branch = iota
	less
	greater
)

// Print - display an ASCII graphic representation of the tree
//
// greater elements are drawn above lesser ones, each line shows the
// element, its sub-tree height and balance factor
//
// returns the depth drawn
func (tree *Tree[T]) Print(w io.Writer) int {
	if nil == tree {
		return 0
	}
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, p *node[T], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	gd := 0
	ld := 0
	if nil != p.side[1] {
		t := "       "
		if less == br {
			t = "|      "
		}
		gd = printTree(w, p.side[1], prefix+t, greater)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case less:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case greater:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h:%d b:%+d\n", p.element, p.height, balanceFactor(p))
	if nil != p.side[0] {
		t := "       "
		if greater == br {
			t = "|      "
		}
		ld = printTree(w, p.side[0], prefix+t, less)
	}
	if gd > ld {
		return 1 + gd
	}
	return 1 + ld
}
