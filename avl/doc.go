// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree over caller
// supplied elements
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access (see the index package).
//
// Each node caches the height of its sub-tree and after every insert
// or remove the nodes on the path back to the root are rebalanced with
// at most two single rotations, so that the heights of the two
// sub-trees of any node differ by no more than one.
//
// Elements are ordered by a Comparator fixed when the tree is
// created.  Equal elements are rejected, so the tree holds a set.
// The tree keeps the element values as given; when T is a pointer
// type the data it points to is never copied or released.
//
// Removing a node that has two children moves the in-order
// successor's element into that node and unlinks the successor, so
// the node that held an element is not guaranteed to survive a
// removal of some other element.
package avl
