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
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

// WriterHeader describes the record to be written. Initial values and
// checksums are computed from the written samples.
type WriterHeader struct {
	FileID            string
	SamplingFrequency int
	Leads             []Calibration
}

// Writer writes WFDB records as a header and a signal stream.
type Writer struct {
	header io.Writer
	data   *bufio.Writer
	hdr    WriterHeader
	format Format
	labels []string
	frames int     // Number of frames written so far.
	first  []int16 // First sample of each lead.
	sums   []int16 // Running checksum of each lead.
}

// Create creates a writer that writes samples to data in the given format.
// The header is written to header when the writer is closed.
func Create(header, data io.Writer, hdr WriterHeader, format Format) (*Writer, error) {
	table, err := NotationFor(format)
	if err != nil {
		return nil, err
	}

	if len(hdr.Leads) == 0 {
		return nil, fmt.Errorf("no leads to write")
	}
	if format == Format212 && len(hdr.Leads) != format212Leads {
		return nil, fmt.Errorf("format 212 requires exactly %d leads, got %d", format212Leads, len(hdr.Leads))
	}

	var seen leadSet
	labels := make([]string, len(hdr.Leads))
	for i, c := range hdr.Leads {
		if !c.Lead.valid() || c.Lead.IsVector() {
			return nil, fmt.Errorf("lead %s cannot be written", c.Lead)
		}
		if seen.has(c.Lead) {
			return nil, fmt.Errorf("duplicate lead %s", c.Lead)
		}
		seen.add(c.Lead)

		label, ok := table.Label(c.Lead)
		if !ok {
			return nil, fmt.Errorf("no %s notation for lead %s", table, c.Lead)
		}
		labels[i] = label
	}

	return &Writer{
		header: header,
		data:   bufio.NewWriter(data),
		hdr:    hdr,
		format: format,
		labels: labels,
		first:  make([]int16, len(hdr.Leads)),
		sums:   make([]int16, len(hdr.Leads)),
	}, nil
}

// WriteFrame writes one sample of every lead, in the order the leads were
// declared.
func (w *Writer) WriteFrame(samples []int16) error {
	if len(samples) != len(w.hdr.Leads) {
		return fmt.Errorf("expected %d samples, got %d", len(w.hdr.Leads), len(samples))
	}

	switch w.format {
	case Format212:
		for i, s := range samples {
			if !fits12(s) {
				return fmt.Errorf("sample %d of lead %s does not fit in 12 bits", s, w.hdr.Leads[i].Lead)
			}
		}
		b0, b1, b2 := pack212(samples[0], samples[1])
		if _, err := w.data.Write([]byte{b0, b1, b2}); err != nil {
			return err
		}
	case Format16:
		for _, s := range samples {
			if err := binary.Write(w.data, binary.LittleEndian, s); err != nil {
				return err
			}
		}
	}

	if w.frames == 0 {
		copy(w.first, samples)
	}
	for i, s := range samples {
		w.sums[i] += s
	}

	w.frames++
	return nil
}

// Close flushes the signal data and writes the header. It does not close
// the underlying writers.
func (w *Writer) Close() error {
	if err := w.data.Flush(); err != nil {
		return fmt.Errorf("error flushing data: %w", err)
	}

	if err := w.writeHeader(); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	return nil
}

func (w *Writer) writeHeader() error {
	writer := bufio.NewWriter(w.header)

	// Record line: fileId leadCount samplingFrequency numberOfSamples
	_, err := fmt.Fprintf(writer, "%s %d %d %d\n", w.hdr.FileID, len(w.hdr.Leads), w.hdr.SamplingFrequency, w.frames)
	if err != nil {
		return err
	}

	// Lead lines: file format gain resolution zero initial checksum blockSize label
	for i, c := range w.hdr.Leads {
		_, err = fmt.Fprintf(writer, "%s.dat %d %s %d %d %d %d 0 %s\n",
			w.hdr.FileID, int(w.format), strconv.FormatFloat(c.Gain, 'g', -1, 64),
			c.Resolution, c.ZeroValue, w.first[i], w.sums[i], w.labels[i])
		if err != nil {
			return err
		}
	}

	return writer.Flush()
}
