package schedule

import "math"

// AssignProgress returns the completion percentage for each of n days. Values
// strictly increase and the last is exactly 100. Up to 100 days they are whole
// numbers, round(i/n*100); longer plans use one more decimal per factor of ten
// so that every day still gets a distinct value.
func AssignProgress(n int) []float64 {
	if n <= 0 {
		return nil
	}

	units := 100
	for units < n {
		units *= 10
	}

	v := make([]int, n)
	for i := range v {
		v[i] = int(math.Round(float64((i+1)*units) / float64(n)))
	}

	// Break ties forward, then pin the last value and pull earlier ones under it.
	for i := 1; i < n; i++ {
		if v[i] <= v[i-1] {
			v[i] = v[i-1] + 1
		}
	}
	v[n-1] = units
	for i := n - 2; i >= 0; i-- {
		if v[i] >= v[i+1] {
			v[i] = v[i+1] - 1
		}
	}

	scale := float64(units) / 100
	out := make([]float64, n)
	for i, x := range v {
		out[i] = float64(x) / scale
	}
	return out
}
