package hungarian

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/assignment"
)

func TestReduce(t *testing.T) {
	s := newMunkres(3, []float64{4, 1, 3, 2, 0, 5, 3, 2, 2}, logr.Discard())
	s.reduceRows()
	s.reduceCols()
	require.Equal(t, []float64{
		2, 0, 2,
		1, 0, 5,
		0, 0, 0,
	}, s.c)
}

func TestStarInitial_RowMajor(t *testing.T) {
	s := newMunkres(3, []float64{
		0, 0, 1,
		0, 0, 4,
		0, 0, 0,
	}, logr.Discard())
	s.starInitial()
	require.Equal(t, []int{0, 1, 2}, s.starCol)
	require.Equal(t, []int{0, 1, 2}, s.starRow)
	require.Equal(t, 3, s.coverStarredColumns())
}

func TestAdjust_NothingUncovered(t *testing.T) {
	s := newMunkres(2, []float64{0, 1, 1, 0}, logr.Discard())
	s.rowCov[0], s.rowCov[1] = true, true
	require.ErrorIs(t, s.adjust(), assignment.ErrInfeasible)
}

func TestAdjust_Arithmetic(t *testing.T) {
	s := newMunkres(2, []float64{
		0, 3,
		2, 5,
	}, logr.Discard())
	s.colCov[0] = true
	s.rowCov[0] = true
	// Uncovered: (1,1)=5. Doubly covered: (0,0).
	require.NoError(t, s.adjust())
	require.Equal(t, []float64{5, 3, 2, 0}, s.c)
}

func TestFlipPath_Broken(t *testing.T) {
	s := newMunkres(2, []float64{0, 0, 0, 0}, logr.Discard())
	// Column 0 is starred in row 0 but row 0 has no prime: the chain breaks.
	s.starCol[0], s.starRow[0] = 0, 0
	require.ErrorIs(t, s.flipPath(1, 0), assignment.ErrInfeasible)
}

func TestFlipPath_Alternates(t *testing.T) {
	s := newMunkres(2, []float64{0, 0, 0, 0}, logr.Discard())
	s.starCol[0], s.starRow[0] = 0, 0
	s.primeCol[0] = 1
	s.primeCol[1] = 0
	require.NoError(t, s.flipPath(1, 0))
	require.Equal(t, []int{1, 0}, s.starCol)
	require.Equal(t, []int{1, 0}, s.starRow)
	require.Len(t, s.path, 3)
}
