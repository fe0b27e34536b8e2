// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Insert - add an element to the tree
//
// an element equal to one already present is rejected with
// fault.ErrDuplicateElement; on any error the tree is unchanged
func (tree *Tree[T]) Insert(element T) error {
	if nil == tree {
		return fault.ErrNilTree
	}
	if nil == tree.cmp {
		return fault.ErrMissingComparator
	}
	root, err := tree.insert(tree.root, element)
	if nil != err {
		return err
	}
	tree.root = root
	return nil
}

// internal routine for insert
// returns the possibly updated sub-tree root
func (tree *Tree[T]) insert(p *node[T], element T) (*node[T], error) {
	if nil == p { // insert new node
		n := tree.pool.newNode(element)
		if nil == n {
			return nil, fault.ErrNodeLimitReached
		}
		return n, nil
	}

	dir := 0
	switch c := tree.cmp(element, p.element); {
	case c < 0:
		dir = 0
	case c > 0:
		dir = 1
	default:
		return p, fault.ErrDuplicateElement
	}

	child, err := tree.insert(p.side[dir], element)
	if nil != err {
		return p, err // nothing changed below
	}
	p.side[dir] = child
	return rebalance(p), nil
}
