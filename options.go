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
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures record decoding.
type Option func(*options)

type options struct {
	logger      zerolog.Logger
	concurrency int // ReadMany only
}

func defaultOptions() *options {
	return &options{
		logger:      zerolog.Nop(),
		concurrency: runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger decoding progress is reported to. Nothing is
// logged by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConcurrency limits how many records ReadMany decodes at once.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
