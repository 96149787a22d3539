//The package provides small numeric helpers shared by the calculation
//packages
package bmath

import (
	"sort"

	"golang.org/x/exp/constraints"
)

//Sqr returns the square of the value
func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

//Clamp limits x to the [low, high] range
func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

//Lerp linearly interpolates between a (x = 0) and b (x = 1)
func Lerp[V constraints.Float](x, a, b V) V {
	return (1-x)*a + x*b
}

//SortedMapKeys returns the keys of the map in ascending order
func SortedMapKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
