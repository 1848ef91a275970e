package hungarian_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvassign/hungarian"
	"github.com/katalvlaran/lvassign/matrix"
)

// ExampleSolve finds the cheapest way to give each of three workers one task.
//
//	    t0 t1 t2
//	w0 [ 4  1  3 ]
//	w1 [ 2  0  5 ]
//	w2 [ 3  2  2 ]
func ExampleSolve() {
	m, _ := matrix.FromRows([][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})

	res, err := hungarian.Solve(context.Background(), m)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range res.Assignment {
		fmt.Printf("worker %d -> task %d\n", p.Row, p.Col)
	}
	fmt.Println("cost:", res.Cost)
	// Output:
	// worker 0 -> task 1
	// worker 1 -> task 0
	// worker 2 -> task 2
	// cost: 5
}
