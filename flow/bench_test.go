package flow_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvassign/flow"
	"github.com/katalvlaran/lvassign/internal/testutil"
)

// BenchmarkSolve measures the full reduction (build + flow + extract).
// Inputs are generated outside the timer.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		m := testutil.Uniform(int64(n), n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			var i int
			for i = 0; i < b.N; i++ {
				if _, err := flow.Solve(context.Background(), m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
