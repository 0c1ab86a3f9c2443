// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleHeader is matched by every HeaderFormatError.
	ErrIncompatibleHeader = errors.New("incompatible header file")
	// ErrBrokenData is matched by every DataIntegrityError.
	ErrBrokenData = errors.New("ecg data is broken")
	// ErrUnsupportedFormat is matched by every UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported storage format")
)

// HeaderFormatError is returned when a header file is structurally invalid.
type HeaderFormatError struct {
	Path   string // Header file path, empty for in-memory headers
	Line   int    // Zero-based line number, -1 if not tied to a line
	Reason string
	Err    error // Underlying parse error, if any
}

func (e *HeaderFormatError) Error() string {
	msg := ErrIncompatibleHeader.Error()
	if e.Line >= 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	msg += ": " + e.Reason
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *HeaderFormatError) Unwrap() error { return e.Err }

func (e *HeaderFormatError) Is(target error) bool {
	return target == ErrIncompatibleHeader
}

// DataIntegrityError is returned when the sample data fails a length,
// initial value or checksum check.
type DataIntegrityError struct {
	Path   string   // Data file path, empty for in-memory data
	Lead   LeadType // Offending lead, only meaningful when HasLead is set
	Reason string

	HasLead bool
}

func (e *DataIntegrityError) Error() string {
	msg := ErrBrokenData.Error()
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.HasLead {
		msg += ": lead " + e.Lead.String()
	}
	return msg + ": " + e.Reason
}

func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrBrokenData
}

// UnsupportedFormatError is returned for storage formats other than 16 and 212.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnsupportedFormat, int(e.Format))
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

func brokenData(reason string, args ...any) *DataIntegrityError {
	return &DataIntegrityError{Reason: fmt.Sprintf(reason, args...)}
}

func brokenLead(l LeadType, reason string, args ...any) *DataIntegrityError {
	return &DataIntegrityError{Lead: l, HasLead: true, Reason: fmt.Sprintf(reason, args...)}
}
