// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// ForEach - call operation for every element in ascending order
//
// stops at the first error returned by operation and returns it
func (tree *Tree[T]) ForEach(operation Operation[T]) error {
	if nil == tree {
		return fault.ErrNilTree
	}
	if nil == operation {
		return fault.ErrMissingOperation
	}
	return forEach(tree.root, operation)
}

func forEach[T any](p *node[T], operation Operation[T]) error {
	if nil == p {
		return nil
	}
	if err := forEach(p.side[0], operation); nil != err {
		return err
	}
	if err := operation(p.element); nil != err {
		return err
	}
	return forEach(p.side[1], operation)
}

// Range - call operation in ascending order for every element e
// where low <= e <= high
//
// sub-trees entirely outside the bounds are not visited
func (tree *Tree[T]) Range(low T, high T, operation Operation[T]) error {
	if nil == tree {
		return fault.ErrNilTree
	}
	if nil == tree.cmp {
		return fault.ErrMissingComparator
	}
	if nil == operation {
		return fault.ErrMissingOperation
	}
	return tree.walkRange(tree.root, low, high, operation)
}

func (tree *Tree[T]) walkRange(p *node[T], low T, high T, operation Operation[T]) error {
	if nil == p {
		return nil
	}
	aboveLow := tree.cmp(p.element, low)
	belowHigh := tree.cmp(p.element, high)

	if aboveLow > 0 {
		if err := tree.walkRange(p.side[0], low, high, operation); nil != err {
			return err
		}
	}
	if aboveLow >= 0 && belowHigh <= 0 {
		if err := operation(p.element); nil != err {
			return err
		}
	}
	if belowHigh < 0 {
		return tree.walkRange(p.side[1], low, high, operation)
	}
	return nil
}
