// SPDX-License-Identifier: MIT

package flow

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvassign/assignment"
)

var (
	// ErrNodeOutOfRange is returned when an edge endpoint or terminal is not a node.
	ErrNodeOutOfRange = errors.New("flow: node index out of range")

	// ErrBadCapacity is returned when an edge is added with negative capacity.
	ErrBadCapacity = errors.New("flow: negative capacity")

	// ErrBadCost is returned when an edge is added with a negative or non-finite cost.
	ErrBadCost = errors.New("flow: negative or non-finite cost")

	// ErrSourceIsSink is returned when source == sink.
	ErrSourceIsSink = errors.New("flow: source equals sink")
)

// Options configures MinCostFlow.
//   - Logger: receives one V(1) line per augmentation. Zero value discards.
//   - Counter: if non-nil, every reduced-cost relaxation is counted here.
type Options struct {
	Logger  logr.Logger
	Counter *assignment.Counter
}

// normalize fills defaults for a nil or partially filled Options.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{Logger: logr.Discard(), Counter: new(assignment.Counter)}
	}
	out := *o
	if out.Counter == nil {
		out.Counter = new(assignment.Counter)
	}

	return out
}
