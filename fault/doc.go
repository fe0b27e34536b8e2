// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Recoverable outcomes (duplicate insert, node limit) are returned as
// one of the error instances below.  Contract violations go through
// Panic/Panicf which log on the PANIC channel before panicking.
package fault
