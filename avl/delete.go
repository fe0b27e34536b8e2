// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - delete the element equal to key
//
// returns the element that was stored in the tree and true, or the
// zero value and false if no such element exists
func (tree *Tree[T]) Remove(key T) (T, bool) {
	if nil == tree || nil == tree.cmp {
		var zero T
		return zero, false
	}
	root, element, ok := tree.remove(tree.root, key)
	if ok {
		tree.root = root
	}
	return element, ok
}

// internal routine for remove
// returns the possibly updated sub-tree root
func (tree *Tree[T]) remove(p *node[T], key T) (*node[T], T, bool) {
	if nil == p {
		var zero T
		return nil, zero, false
	}

	dir := 0
	switch c := tree.cmp(key, p.element); {
	case c < 0:
		dir = 0
	case c > 0:
		dir = 1
	default:
		return tree.unlink(p)
	}

	child, element, ok := tree.remove(p.side[dir], key)
	if !ok {
		return p, element, false
	}
	p.side[dir] = child
	return rebalance(p), element, true
}

// remove the element held by p from the sub-tree rooted at p
func (tree *Tree[T]) unlink(p *node[T]) (*node[T], T, bool) {
	element := p.element

	if nil == p.side[0] || nil == p.side[1] {
		child := p.side[0]
		if nil == child {
			child = p.side[1]
		}
		tree.pool.freeNode(p)
		return child, element, true
	}

	// two children: p takes over the successor's element and the
	// successor node goes instead
	successor := minimum(p.side[1])
	p.element = successor.element
	p.side[1], _, _ = tree.remove(p.side[1], successor.element)

	return rebalance(p), element, true
}
