package pool

import "sync"

// Axes holds the transformed x and y columns of one fit.
type Axes struct {
	X []float64
	Y []float64
}

var axesPool = sync.Pool{
	New: func() any { return &Axes{} },
}

// GetAxes returns scratch columns of exactly n elements each.
//
// The contents are unspecified; callers overwrite every element. The returned
// release function hands the columns back and must be called once.
//
// Example:
//
//	axes, release := pool.GetAxes(len(samples))
//	defer release()
func GetAxes(n int) (*Axes, func()) {
	a, _ := axesPool.Get().(*Axes)
	a.X = resize(a.X, n)
	a.Y = resize(a.Y, n)

	return a, func() { axesPool.Put(a) }
}

func resize(col []float64, n int) []float64 {
	if cap(col) < n {
		return make([]float64, n)
	}

	return col[:n]
}
