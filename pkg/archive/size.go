package archive

import (
	"math"
	"strconv"
)

var sizeSuffixes = []string{"K", "M", "G", "T", "P", "E"}

// HumanSize renders a byte count the way `du -h` does: powers of 1024,
// one decimal below 10, rounded up.
func HumanSize(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10)
	}

	v := float64(n)
	i := -1

	for v >= 1024 && i < len(sizeSuffixes)-1 {
		v /= 1024
		i++
	}

	if rounded := math.Ceil(v*10) / 10; rounded < 10 {
		return strconv.FormatFloat(rounded, 'f', 1, 64) + sizeSuffixes[i]
	}

	return strconv.FormatInt(int64(math.Ceil(v)), 10) + sizeSuffixes[i]
}
