// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func height[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute cached height from the children
func (p *node[T]) updateHeight() {
	h0 := height(p.side[0])
	h1 := height(p.side[1])
	if h0 > h1 {
		p.height = 1 + h0
	} else {
		p.height = 1 + h1
	}
}

// positive => side 1 is taller
func balanceFactor[T any](p *node[T]) int {
	return height(p.side[1]) - height(p.side[0])
}

// single rotation, returns the new sub-tree root
//
//   dir = 0: side[1] is promoted (rotate towards side 0)
//   dir = 1: side[0] is promoted (rotate towards side 1)
func rotate[T any](root *node[T], dir int) *node[T] {
	pivot := root.side[1-dir]
	root.side[1-dir] = pivot.side[dir]
	pivot.side[dir] = root

	// root is now below pivot so must be done first
	root.updateHeight()
	pivot.updateHeight()
	return pivot
}

// restore the height difference limit at p, returns the new sub-tree
// root which the caller must link back in place of p
func rebalance[T any](p *node[T]) *node[T] {
	p.updateHeight()

	switch bf := balanceFactor(p); {
	case bf > 1:
		if balanceFactor(p.side[1]) < 0 { // RL
			p.side[1] = rotate(p.side[1], 1)
		}
		return rotate(p, 0)

	case bf < -1:
		if balanceFactor(p.side[0]) > 0 { // LR
			p.side[0] = rotate(p.side[0], 0)
		}
		return rotate(p, 1)

	default:
		return p
	}
}
