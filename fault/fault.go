// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrDuplicateElement       = ExistsError("duplicate element")
	ErrHeightMismatch         = RecordError("cached height does not match subtrees")
	ErrIndexClosed            = ProcessError("index is closed")
	ErrInvalidKey             = InvalidError("invalid key")
	ErrInvalidKeyType         = InvalidError("invalid key type")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMissingArguments       = InvalidError("missing arguments")
	ErrMissingComparator      = InvalidError("missing comparator")
	ErrMissingOperation       = InvalidError("missing operation")
	ErrNegativeNodeLimit      = InvalidError("negative node limit")
	ErrNegativeReportInterval = InvalidError("negative report interval")
	ErrNilTree                = InvalidError("nil tree")
	ErrNodeLimitReached       = LengthError("node limit reached")
	ErrNotADirectory          = InvalidError("not a directory")
	ErrNotFound               = NotFoundError("not found")
	ErrOrderViolation         = RecordError("elements out of order")
	ErrTooManyArguments       = InvalidError("too many arguments")
	ErrUnbalanced             = RecordError("tree is unbalanced")
	ErrUnknownOperation       = InvalidError("unknown operation")
	ErrWatcherClosed          = ProcessError("watcher closed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
