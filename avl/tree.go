// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Comparator - ordering function for the elements of a tree
//
// returns negative if candidate sorts before existing, positive if
// after and zero if they are equal.  It must be a strict total order
// and must not change while the tree holds any elements.
type Comparator[T any] func(candidate T, existing T) int

// Operation - called for each element visited by ForEach or Range,
// a non-nil error stops the traversal
type Operation[T any] func(element T) error

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root *node[T]
	cmp  Comparator[T]
	pool allocator[T]
}

// New - create an initially empty tree
func New[T any](cmp Comparator[T]) (*Tree[T], error) {
	return NewLimited(cmp, 0)
}

// NewLimited - create an empty tree that can hold at most
// maximumNodes elements, zero means no limit
func NewLimited[T any](cmp Comparator[T], maximumNodes int) (*Tree[T], error) {
	if nil == cmp {
		return nil, fault.ErrMissingComparator
	}
	if maximumNodes < 0 {
		return nil, fault.ErrNegativeNodeLimit
	}
	return &Tree[T]{
		root: nil,
		cmp:  cmp,
		pool: allocator[T]{
			limit: maximumNodes,
		},
	}, nil
}

// Destroy - release all nodes and disable the tree
//
// a destroyed tree behaves as if it had no comparator: inserts fail
// and lookups find nothing.  Safe to call on a nil tree.
func (tree *Tree[T]) Destroy() {
	if nil == tree {
		return
	}
	tree.release(tree.root)
	tree.root = nil
	tree.cmp = nil
}

// children first so the free list never holds a linked node
func (tree *Tree[T]) release(p *node[T]) {
	if nil == p {
		return
	}
	tree.release(p.side[0])
	tree.release(p.side[1])
	tree.pool.freeNode(p)
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	if nil == tree {
		fault.Panic("avl: IsEmpty called on a nil tree")
	}
	return nil == tree.root
}

// Count - number of elements currently in the tree
func (tree *Tree[T]) Count() int {
	if nil == tree {
		return 0
	}
	return count(tree.root)
}

func count[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + count(p.side[0]) + count(p.side[1])
}

// Height - number of levels in the tree
func (tree *Tree[T]) Height() int {
	if nil == tree {
		return 0
	}
	return height(tree.root)
}

// Stats - node allocation counts
func (tree *Tree[T]) Stats() Statistics {
	if nil == tree {
		return Statistics{}
	}
	return tree.pool.statistics()
}
