// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - locate the element equal to key
func (tree *Tree[T]) Find(key T) (T, bool) {
	if nil == tree || nil == tree.cmp {
		var zero T
		return zero, false
	}
	p := tree.search(tree.root, key)
	if nil == p {
		var zero T
		return zero, false
	}
	return p.element, true
}

func (tree *Tree[T]) search(p *node[T], key T) *node[T] {
	if nil == p {
		return nil
	}
	switch c := tree.cmp(key, p.element); {
	case c < 0:
		return tree.search(p.side[0], key)
	case c > 0:
		return tree.search(p.side[1], key)
	default:
		return p
	}
}

// Min - return the lowest element
func (tree *Tree[T]) Min() (T, bool) {
	if nil == tree || nil == tree.root {
		var zero T
		return zero, false
	}
	return minimum(tree.root).element, true
}

// Max - return the highest element
func (tree *Tree[T]) Max() (T, bool) {
	if nil == tree || nil == tree.root {
		var zero T
		return zero, false
	}
	return maximum(tree.root).element, true
}

// internal: lowest node in a non-empty sub-tree
func minimum[T any](p *node[T]) *node[T] {
	for nil != p.side[0] {
		p = p.side[0]
	}
	return p
}

// internal: highest node in a non-empty sub-tree
func maximum[T any](p *node[T]) *node[T] {
	for nil != p.side[1] {
		p = p.side[1]
	}
	return p
}
