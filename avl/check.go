// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Check - verify ordering, cached heights and balance of every node
func (tree *Tree[T]) Check() error {
	if nil == tree {
		return fault.ErrNilTree
	}
	if nil == tree.root {
		return nil
	}
	if nil == tree.cmp {
		return fault.ErrMissingComparator
	}
	c := checker[T]{cmp: tree.cmp}
	_, err := c.check(tree.root)
	return err
}

type checker[T any] struct {
	cmp      Comparator[T]
	previous *node[T] // last node visited in order
}

// internal: returns the actual height of the sub-tree
func (c *checker[T]) check(p *node[T]) (int, error) {
	if nil == p {
		return 0, nil
	}

	h0, err := c.check(p.side[0])
	if nil != err {
		return 0, err
	}

	if nil != c.previous && c.cmp(p.element, c.previous.element) <= 0 {
		return 0, fault.ErrOrderViolation
	}
	c.previous = p

	h1, err := c.check(p.side[1])
	if nil != err {
		return 0, err
	}

	h := 1 + h0
	if h1 > h0 {
		h = 1 + h1
	}
	if h != p.height {
		return 0, fault.ErrHeightMismatch
	}
	if bf := h1 - h0; bf > 1 || bf < -1 {
		return 0, fault.ErrUnbalanced
	}
	return h, nil
}
