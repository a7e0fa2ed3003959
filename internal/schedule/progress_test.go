package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goal-planner/internal/schedule"
)

func TestAssignProgress(t *testing.T) {
	assert.Equal(t, []float64{20, 40, 60, 80, 100}, schedule.AssignProgress(5))
	assert.Equal(t, []float64{100}, schedule.AssignProgress(1))
	assert.Equal(t, []float64{33, 67, 100}, schedule.AssignProgress(3))
	assert.Nil(t, schedule.AssignProgress(0))
}

func TestAssignProgress_StrictlyIncreasing(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 31, 99, 100, 101, 184, 366, 1000, 1001} {
		p := schedule.AssignProgress(n)
		if len(p) != n {
			t.Fatalf("n=%d: got %d values", n, len(p))
		}
		if p[n-1] != 100 {
			t.Errorf("n=%d: last value %v, want 100", n, p[n-1])
		}
		for i := 1; i < n; i++ {
			if p[i] <= p[i-1] {
				t.Fatalf("n=%d: value %d (%v) not above %d (%v)", n, i, p[i], i-1, p[i-1])
			}
		}
		if p[0] <= 0 {
			t.Errorf("n=%d: first value %v must be positive", n, p[0])
		}
	}
}

func TestAssignProgress_WholeNumbersUpTo100(t *testing.T) {
	for n := 1; n <= 100; n++ {
		for i, v := range schedule.AssignProgress(n) {
			if v != float64(int(v)) {
				t.Fatalf("n=%d: value %d is %v, want a whole number", n, i, v)
			}
		}
	}
}
