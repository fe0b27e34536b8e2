// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// The file must return a table, its fields are mapped onto the
// callers struct using the "gluamapper" field tags.  The name of the
// file is available as arg[0] and any extra variables supplied by the
// caller are set as global strings before the file is run.
package configuration
