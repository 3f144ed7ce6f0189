// SPDX-License-Identifier: MIT

// Package core: functional configuration for container construction.
// This file defines:
//   - Policy and its documented default,
//   - Option / Options (functional options with internal state),
//   - WithPolicy (panics on an unknown policy: programmer error),
//   - Gather, which resolves ...Option into an Options value.
//
// Notes:
//   - There is no global state; every constructor call resolves its own options.
//   - The policy only decides what happens to oversized input. Undersized input
//     is always legal and leaves the remaining slots at the zero value.
package core

import "fmt"

// Policy selects how constructors treat input that does not fit.
type Policy uint8

const (
	// PolicyStrict rejects oversized input with ErrSizeMismatch / ErrShapeMismatch.
	PolicyStrict Policy = iota

	// PolicyTruncate keeps what fits and drops the rest.
	PolicyTruncate
)

// DefaultPolicy is the policy used when no WithPolicy option is given.
const DefaultPolicy = PolicyStrict

const panicPolicyInvalid = "core: WithPolicy: unknown policy %d"

// String returns the policy name as used by the demo CLI and scenario files.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy maps "strict" / "truncate" (and "" as the default) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "strict":
		return PolicyStrict, nil
	case "truncate":
		return PolicyTruncate, nil
	default:
		return DefaultPolicy, fmt.Errorf("core: unknown policy %q", s)
	}
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	policy Policy // DefaultPolicy
}

// WithPolicy sets the oversized-input policy.
// Panics if p is not one of the declared Policy values.
func WithPolicy(p Policy) Option {
	if p != PolicyStrict && p != PolicyTruncate {
		panic(fmt.Sprintf(panicPolicyInvalid, p))
	}

	return func(o *Options) {
		o.policy = p
	}
}

// Gather applies opts over the defaults in order; the last writer wins.
// Nil options are skipped.
func Gather(opts ...Option) Options {
	o := Options{policy: DefaultPolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Policy returns the resolved oversized-input policy.
func (o Options) Policy() Policy {
	return o.policy
}

// Truncate reports whether oversized input should be clamped.
func (o Options) Truncate() bool {
	return o.policy == PolicyTruncate
}
