package geoplot

import (
	"fmt"
	"math"
	"sort"
)

// FisherJenks computes natural-breaks classification over values: class
// boundaries that minimize the within-class sum of squared deviations. It
// returns the upper bound of each class in ascending order, the last being
// the maximum value. When k exceeds the number of distinct values, the
// number of classes is reduced to match.
func FisherJenks(values []float64, k int) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("geoplot: no values to classify")
	} else if k < 1 {
		return nil, fmt.Errorf("geoplot: need at least one class, got %d", k)
	}

	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)

	distinct := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			distinct++
		}
	}
	if distinct < k {
		k = distinct
	}

	n := len(sorted)
	lower := make([][]int, n+1)
	variance := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		lower[i] = make([]int, k+1)
		variance[i] = make([]float64, k+1)
	}
	for j := 1; j <= k; j++ {
		lower[1][j] = 1
		for i := 2; i <= n; i++ {
			variance[i][j] = math.Inf(1)
		}
	}

	for l := 2; l <= n; l++ {
		var sum, sumSq, w, v float64
		for m := 1; m <= l; m++ {
			i3 := l - m + 1
			val := sorted[i3-1]
			w += 1.0
			sum += val
			sumSq += val * val
			v = sumSq - sum*sum/w
			if i3 != 1 {
				for j := 2; j <= k; j++ {
					if v+variance[i3-1][j-1] <= variance[l][j] {
						lower[l][j] = i3
						variance[l][j] = v + variance[i3-1][j-1]
					}
				}
			}
		}
		lower[l][1] = 1
		variance[l][1] = v
	}

	breaks := make([]float64, k)
	breaks[k-1] = sorted[n-1]
	count := n
	for j := k; j >= 2; j-- {
		id := lower[count][j] - 1
		breaks[j-2] = sorted[id-1]
		count = id
	}
	return breaks, nil
}

// classIndex returns the class of v given ascending class upper bounds.
// Values beyond the last bound fall into the last class.
func classIndex(v float64, breaks []float64) int {
	for i, b := range breaks {
		if v <= b {
			return i
		}
	}
	return len(breaks) - 1
}
