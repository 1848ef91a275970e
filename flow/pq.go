// SPDX-License-Identifier: MIT

package flow

// distItem is a heap entry: a node and the tentative distance it was pushed with.
type distItem struct {
	node int
	dist float64
}

// distPQ is a min-heap of distItem ordered by dist, used with the
// lazy-decrease-key pattern: improved distances push a new entry and stale
// entries are skipped when popped.
type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }

func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
