// SPDX-License-Identifier: MIT

package assignment

// Counter counts elementary operations (comparisons, subtractions, edge
// relaxations) during one solve. It only ever grows and has no influence on
// the algorithm's result.
//
// A Counter belongs to a single solve and is not safe for concurrent use.
type Counter struct {
	n int64
}

// Inc adds one operation.
func (c *Counter) Inc() { c.n++ }

// Add adds k operations; negative k is ignored to keep the counter monotone.
func (c *Counter) Add(k int64) {
	if k > 0 {
		c.n += k
	}
}

// Value reports the current count.
func (c *Counter) Value() int64 { return c.n }
