// SPDX-License-Identifier: MIT

// Package hybrid: functional options and documented defaults.
// Option constructors panic only on nonsensical values (programmer error).

package hybrid

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvhybrid/keys"
)

// DefaultTolerance is the default absolute tolerance for Equals methods.
const DefaultTolerance = 1e-9

// DefaultCapacity is the initial factor capacity of a FactorGraph.
const DefaultCapacity = 16

const panicCapacityInvalid = "hybrid: WithCapacity: capacity must be non-negative"

// Option configures a FactorGraph.
type Option func(*graphOptions)

type graphOptions struct {
	logger   logrus.FieldLogger
	capacity int
}

func defaultGraphOptions() graphOptions {
	return graphOptions{
		logger:   logrus.StandardLogger(),
		capacity: DefaultCapacity,
	}
}

// WithLogger routes FactorGraph diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *graphOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCapacity preallocates room for n factors. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *graphOptions) { o.capacity = n }
}

// FormatOption configures table rendering (FormatTree, FormatFactorGraph).
type FormatOption func(*formatOptions)

type formatOptions struct {
	keyFormatter keys.KeyFormatter
	color        bool
}

func defaultFormatOptions() formatOptions {
	return formatOptions{keyFormatter: keys.DefaultKeyFormatter}
}

// WithKeyFormatter renders keys with f. A nil formatter is ignored.
func WithKeyFormatter(f keys.KeyFormatter) FormatOption {
	return func(o *formatOptions) {
		if f != nil {
			o.keyFormatter = f
		}
	}
}

// WithColor toggles ANSI-colored table headers (off by default).
func WithColor(enabled bool) FormatOption {
	return func(o *formatOptions) { o.color = enabled }
}
