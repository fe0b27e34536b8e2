// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[T any] struct {
	side    [2]*node[T] // 0 => lesser sub-tree, 1 => greater sub-tree
	element T
	height  int // levels in this sub-tree, a leaf is 1
}

// Statistics - allocator counts for a single tree
type Statistics struct {
	LiveNodes    int `json:"liveNodes"`    // nodes linked into the tree
	FreeNodes    int `json:"freeNodes"`    // reclaimed nodes waiting for reuse
	TotalNodes   int `json:"totalNodes"`   // nodes ever created
	MaximumNodes int `json:"maximumNodes"` // zero => unlimited
}

// per-tree node pool, the free list is linked through side[0]
type allocator[T any] struct {
	pool       *node[T]
	limit      int
	liveNodes  int
	freeNodes  int
	totalNodes int
}

// allocate a new leaf, reuses reclaimed nodes if any are available
//
// returns nil if the node limit has been reached
func (a *allocator[T]) newNode(element T) *node[T] {
	if 0 != a.limit && a.liveNodes >= a.limit {
		return nil
	}
	a.liveNodes += 1

	if nil == a.pool {
		if 0 != a.freeNodes {
			panic("avl: pool corrupt")
		}
		a.totalNodes += 1
		return &node[T]{
			element: element,
			height:  1,
		}
	}

	p := a.pool
	a.pool = p.side[0]
	a.freeNodes -= 1

	p.side[0] = nil // ensure freelist pointer is cleared
	p.element = element
	p.height = 1
	return p
}

// reclaim a node and keep it in the pool
func (a *allocator[T]) freeNode(p *node[T]) {
	var zero T
	p.side[1] = nil
	p.element = zero
	p.height = 0

	p.side[0] = a.pool // use as free list pointer
	a.pool = p

	a.liveNodes -= 1
	a.freeNodes += 1
}

func (a *allocator[T]) statistics() Statistics {
	return Statistics{
		LiveNodes:    a.liveNodes,
		FreeNodes:    a.freeNodes,
		TotalNodes:   a.totalNodes,
		MaximumNodes: a.limit,
	}
}
