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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// ReadRecord reads and validates a record from a header (.hea) file and a
// signal (.dat) file stored in the given format. Both files are read into
// memory in full.
//
// Errors match ErrIncompatibleHeader, ErrBrokenData or ErrUnsupportedFormat,
// apart from failures to read the files themselves.
func ReadRecord(headerPath, dataPath string, format Format, opts ...Option) (*Record, error) {
	if _, err := NotationFor(format); err != nil {
		return nil, err
	}

	header, err := os.ReadFile(headerPath)
	if err != nil {
		return nil, fmt.Errorf("error reading header file: %w", err)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("error reading data file: %w", err)
	}

	rec, err := Decode(bytes.NewReader(header), data, format, opts...)
	if err != nil {
		var hfe *HeaderFormatError
		if errors.As(err, &hfe) && hfe.Path == "" {
			hfe.Path = headerPath
		}
		var die *DataIntegrityError
		if errors.As(err, &die) && die.Path == "" {
			die.Path = dataPath
		}
		return nil, err
	}

	return rec, nil
}

// Decode decodes a record from an in-memory header and signal data.
func Decode(header io.Reader, data []byte, format Format, opts ...Option) (*Record, error) {
	o := applyOptions(opts)

	table, err := NotationFor(format)
	if err != nil {
		return nil, err
	}

	hdr, err := ParseHeader(header, table)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With().Str("file_id", hdr.FileID).Stringer("format", format).Logger()
	logger.Debug().
		Int("leads", len(hdr.Leads)).
		Int("samples", hdr.Samples).
		Int("sampling_frequency", hdr.SamplingFrequency).
		Msg("Header parsed")

	if len(hdr.Leads) > 0 && hdr.RawFormat != format {
		logger.Warn().Stringer("header_format", hdr.RawFormat).Msg("Header declares a different storage format")
	}

	var leads [][]int16
	switch format {
	case Format16:
		leads, err = decode16(data, hdr)
	case Format212:
		leads, err = decode212(data, hdr)
	}
	if err != nil {
		logger.Debug().Err(err).Msg("Error decoding samples")
		return nil, err
	}

	if err := validate(hdr, leads); err != nil {
		logger.Debug().Err(err).Msg("Record failed validation")
		return nil, err
	}

	logger.Debug().Msg("Record validated")

	return assemble(hdr, leads), nil
}

// Source locates a record on disk.
type Source struct {
	HeaderPath string
	DataPath   string
	Format     Format
}

// ReadMany reads several independent records concurrently. Results are in
// the order of sources. The first failure cancels the remaining reads and is
// returned with the failing file path.
func ReadMany(ctx context.Context, sources []Source, opts ...Option) ([]*Record, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	o := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	records := make([]*Record, len(sources))

	for i, src := range sources {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rec, err := ReadRecord(src.HeaderPath, src.DataPath, src.Format, opts...)
			if err != nil {
				var hfe *HeaderFormatError
				var die *DataIntegrityError
				if errors.As(err, &hfe) || errors.As(err, &die) {
					return err
				}
				return fmt.Errorf("%s: %w", src.HeaderPath, err)
			}

			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.Debug().Int("records", len(records)).Msg("Records read")

	return records, nil
}
