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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token positions within a lead line.
// e.g. "s0010_re.dat 16 2000 16 0 -489 -8337 0 i"
const (
	tokFormat = 1
	tokGain   = 2
	tokRes    = 3
	tokZero   = 4
	tokInit   = 5
	tokSum    = 6
	tokLabel  = 8

	leadLineTokens   = 9
	recordLineTokens = 4
)

// ParseHeader parses a WFDB header, resolving lead labels with the given
// notation table. Lines following the lead block (such as PTB "#" comments)
// are ignored.
func ParseHeader(r io.Reader, table NotationTable) (*Header, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &HeaderFormatError{Reason: "error reading record line", Err: err}
		}
		return nil, &HeaderFormatError{Reason: "missing record line"}
	}

	// Record line: fileId leadCount samplingFrequency numberOfSamples
	fields := strings.Fields(scanner.Text())
	if len(fields) < recordLineTokens {
		return nil, &HeaderFormatError{Reason: fmt.Sprintf("expected at least %d fields in record line, got %d", recordLineTokens, len(fields))}
	}

	hdr := &Header{FileID: fields[0]}

	leadCount, err := parseCount(fields[1])
	if err != nil {
		return nil, &HeaderFormatError{Reason: "error parsing lead count", Err: err}
	}

	hdr.SamplingFrequency, err = parseCount(fields[2])
	if err != nil {
		return nil, &HeaderFormatError{Reason: "error parsing sampling frequency", Err: err}
	}

	hdr.Samples, err = parseCount(fields[3])
	if err != nil {
		return nil, &HeaderFormatError{Reason: "error parsing number of samples", Err: err}
	}

	formatSeen := false
	for line := 1; line <= leadCount; line++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, &HeaderFormatError{Line: line, Reason: "error reading lead line", Err: err}
			}
			return nil, &HeaderFormatError{Line: line, Reason: fmt.Sprintf("expected %d lead lines, got %d", leadCount, line-1)}
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) != leadLineTokens {
			return nil, &HeaderFormatError{Line: line, Reason: fmt.Sprintf("expected %d fields in lead line, got %d", leadLineTokens, len(fields))}
		}

		lead, ok := table.Lookup(fields[tokLabel])
		if !ok {
			return nil, &HeaderFormatError{Line: line, Reason: fmt.Sprintf("unknown %s lead notation %q", table, fields[tokLabel])}
		}

		if lead.IsVector() {
			continue
		}

		if hdr.Has(lead) {
			return nil, &HeaderFormatError{Line: line, Reason: fmt.Sprintf("duplicate lead %s", lead)}
		}

		c, err := parseLeadLine(lead, fields)
		if err != nil {
			return nil, &HeaderFormatError{Line: line, Reason: "error parsing lead calibration", Err: err}
		}

		if !formatSeen {
			format, err := strconv.Atoi(fields[tokFormat])
			if err != nil {
				return nil, &HeaderFormatError{Line: line, Reason: "error parsing storage format", Err: err}
			}
			hdr.RawFormat = Format(format)
			formatSeen = true
		}

		hdr.addLead(c)
	}

	if err := scanner.Err(); err != nil {
		return nil, &HeaderFormatError{Reason: "error reading header", Err: err}
	}

	return hdr, nil
}

func parseLeadLine(lead LeadType, fields []string) (Calibration, error) {
	c := Calibration{Lead: lead}

	var err error
	if c.Gain, err = strconv.ParseFloat(fields[tokGain], 64); err != nil {
		return c, fmt.Errorf("gain: %w", err)
	}
	if c.Resolution, err = strconv.Atoi(fields[tokRes]); err != nil {
		return c, fmt.Errorf("resolution: %w", err)
	}
	if c.ZeroValue, err = parseInt16(fields[tokZero]); err != nil {
		return c, fmt.Errorf("zero value: %w", err)
	}
	if c.InitialValue, err = parseInt16(fields[tokInit]); err != nil {
		return c, fmt.Errorf("initial value: %w", err)
	}
	if c.Checksum, err = parseInt16(fields[tokSum]); err != nil {
		return c, fmt.Errorf("checksum: %w", err)
	}

	return c, nil
}

func parseInt16(s string) (int16, error) {
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
