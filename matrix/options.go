// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication kernel.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

// DefaultLoopOrder is the i-k-j order: row of A outermost, streaming rows of
// B in the innermost loop, which keeps both operands and the result walking
// the flat buffers sequentially.
const DefaultLoopOrder = IKJ

// Option mutates Options; apply with gatherOptions.
type Option func(*Options)

// Options holds the resolved kernel configuration.
type Options struct {
	loopOrder LoopOrder
}

// LoopOrder returns the configured loop order.
func (o Options) LoopOrder() LoopOrder { return o.loopOrder }

// WithLoopOrder selects the multiplication loop nesting.
// Panics on an undefined order (programmer error).
func WithLoopOrder(order LoopOrder) Option {
	if !order.Valid() {
		panic(fmt.Sprintf("matrix: WithLoopOrder(%d): invalid order", int(order)))
	}

	return func(o *Options) { o.loopOrder = order }
}

// NewOptions returns defaults with opts applied in order (last wins).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func defaultOptions() Options {
	return Options{loopOrder: DefaultLoopOrder}
}

// gatherOptions applies user options on top of defaults; nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ParseLoopOrder maps "ijk".."kji" (case-insensitive) or the digits "0".."5"
// to a LoopOrder.
func ParseLoopOrder(s string) (LoopOrder, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range loopOrderNames {
		if key == name || (len(key) == 1 && key[0] == byte('0'+i)) {
			return LoopOrder(i), nil
		}
	}

	return 0, fmt.Errorf("ParseLoopOrder(%q): %w", s, ErrUnknownLoopOrder)
}
