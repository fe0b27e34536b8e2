// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"io"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/counter"
	"github.com/bitmark-inc/avlindex/fault"
)

// Index - a synchronised ordered set of T
type Index[T any] struct {
	sync.RWMutex

	name   string
	log    *logger.L
	tree   *avl.Tree[T]
	closed bool

	inserted counter.Counter
	rejected counter.Counter
	removed  counter.Counter
	missed   counter.Counter
}

// Statistics - snapshot of an index
type Statistics struct {
	Name     string         `json:"name"`
	Count    int            `json:"count"`
	Height   int            `json:"height"`
	Inserted uint64         `json:"inserted"`
	Rejected uint64         `json:"rejected"`
	Removed  uint64         `json:"removed"`
	Missed   uint64         `json:"missed"`
	Nodes    avl.Statistics `json:"nodes"`
}

// New - create an empty index
//
// maximumNodes limits the number of elements, zero means no limit
func New[T any](name string, cmp avl.Comparator[T], maximumNodes int) (*Index[T], error) {
	tree, err := avl.NewLimited(cmp, maximumNodes)
	if nil != err {
		return nil, err
	}

	log := logger.New("index-" + name)
	log.Infof("created with node limit: %d", maximumNodes)

	return &Index[T]{
		name: name,
		log:  log,
		tree: tree,
	}, nil
}

// Name - the name given to New
func (ix *Index[T]) Name() string {
	return ix.name
}

// Insert - add a new element
func (ix *Index[T]) Insert(element T) error {
	ix.Lock()
	defer ix.Unlock()

	if ix.closed {
		return fault.ErrIndexClosed
	}

	err := ix.tree.Insert(element)
	if nil != err {
		ix.rejected.Increment()
		ix.log.Warnf("insert: %v  error: %s", element, err)
		return err
	}
	ix.inserted.Increment()
	ix.log.Debugf("insert: %v  count: %d", element, ix.inserted.Uint64()-ix.removed.Uint64())
	return nil
}

// Remove - delete the element equal to key and return it
func (ix *Index[T]) Remove(key T) (T, error) {
	ix.Lock()
	defer ix.Unlock()

	if ix.closed {
		var zero T
		return zero, fault.ErrIndexClosed
	}

	element, ok := ix.tree.Remove(key)
	if !ok {
		ix.missed.Increment()
		ix.log.Debugf("remove: %v  not found", key)
		return element, fault.ErrNotFound
	}
	ix.removed.Increment()
	ix.log.Debugf("remove: %v", element)
	return element, nil
}

// Find - return the stored element equal to key
func (ix *Index[T]) Find(key T) (T, error) {
	ix.RLock()
	defer ix.RUnlock()

	if ix.closed {
		var zero T
		return zero, fault.ErrIndexClosed
	}

	element, ok := ix.tree.Find(key)
	if !ok {
		ix.missed.Increment()
		return element, fault.ErrNotFound
	}
	return element, nil
}

// Min - the lowest element
func (ix *Index[T]) Min() (T, error) {
	return ix.extreme(func(tree *avl.Tree[T]) (T, bool) { return tree.Min() })
}

// Max - the highest element
func (ix *Index[T]) Max() (T, error) {
	return ix.extreme(func(tree *avl.Tree[T]) (T, bool) { return tree.Max() })
}

func (ix *Index[T]) extreme(get func(*avl.Tree[T]) (T, bool)) (T, error) {
	ix.RLock()
	defer ix.RUnlock()

	if ix.closed {
		var zero T
		return zero, fault.ErrIndexClosed
	}
	element, ok := get(ix.tree)
	if !ok {
		return element, fault.ErrNotFound
	}
	return element, nil
}

// Count - number of elements
func (ix *Index[T]) Count() int {
	ix.RLock()
	defer ix.RUnlock()
	return ix.tree.Count()
}

// Height - levels in the underlying tree
func (ix *Index[T]) Height() int {
	ix.RLock()
	defer ix.RUnlock()
	return ix.tree.Height()
}

// IsEmpty - true if there are no elements, a closed index is empty
func (ix *Index[T]) IsEmpty() bool {
	ix.RLock()
	defer ix.RUnlock()
	return ix.tree.IsEmpty()
}

// ForEach - call operation for each element in ascending order
func (ix *Index[T]) ForEach(operation avl.Operation[T]) error {
	ix.RLock()
	defer ix.RUnlock()

	if ix.closed {
		return fault.ErrIndexClosed
	}
	return ix.tree.ForEach(operation)
}

// Range - call operation for each element in [low, high]
func (ix *Index[T]) Range(low T, high T, operation avl.Operation[T]) error {
	ix.RLock()
	defer ix.RUnlock()

	if ix.closed {
		return fault.ErrIndexClosed
	}
	return ix.tree.Range(low, high, operation)
}

// Check - verify the structure of the underlying tree
func (ix *Index[T]) Check() error {
	ix.RLock()
	defer ix.RUnlock()

	if ix.closed {
		return fault.ErrIndexClosed
	}
	err := ix.tree.Check()
	if nil != err {
		ix.log.Criticalf("check failed: %s", err)
	}
	return err
}

// Print - draw the underlying tree
func (ix *Index[T]) Print(w io.Writer) int {
	ix.RLock()
	defer ix.RUnlock()
	return ix.tree.Print(w)
}

// Statistics - current sizes and operation counts
func (ix *Index[T]) Statistics() Statistics {
	ix.RLock()
	defer ix.RUnlock()

	return Statistics{
		Name:     ix.name,
		Count:    ix.tree.Count(),
		Height:   ix.tree.Height(),
		Inserted: ix.inserted.Uint64(),
		Rejected: ix.rejected.Uint64(),
		Removed:  ix.removed.Uint64(),
		Missed:   ix.missed.Uint64(),
		Nodes:    ix.tree.Stats(),
	}
}

// Close - release all elements, later calls return fault.ErrIndexClosed
func (ix *Index[T]) Close() {
	ix.Lock()
	defer ix.Unlock()

	if ix.closed {
		return
	}
	ix.log.Infof("close: count: %d", ix.tree.Count())
	ix.tree.Destroy()
	ix.closed = true
	ix.log.Flush()
}
