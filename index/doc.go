// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - a named ordered set that can be shared between go
// routines
//
// an Index wraps a single avl.Tree with a read/write mutex, keeps
// counters of the operations performed and logs changes on its own
// logger channel "index-<name>", so logger.Initialise must have been
// called first.
//
// ForEach and Range hold the read lock while the operation runs, so
// the operation must not call any method of the same Index that
// modifies it.
package index
