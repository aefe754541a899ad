package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// MaxDims is the largest supported number of dimensions.
const MaxDims = 8

// Key is an N-dimensional integer coordinate. Index 0 is the fastest-varying
// dimension. Keys are values and compare with ==.
type Key struct {
	k    [MaxDims]int
	dims int
}

// NewKey returns the key with components vals, index 0 first.
// It panics if more than MaxDims components are given.
func NewKey(vals ...int) Key {
	if len(vals) > MaxDims {
		panic(errors.AssertionFailedf("key with %d dimensions exceeds %d", len(vals), MaxDims))
	}
	var k Key
	k.dims = len(vals)
	copy(k.k[:], vals)
	return k
}

// ZeroKey returns the all-zero key of the given dimensionality.
func ZeroKey(dims int) Key {
	if dims < 0 || dims > MaxDims {
		panic(errors.AssertionFailedf("key with %d dimensions", dims))
	}
	return Key{dims: dims}
}

// Dims returns the number of dimensions.
func (k Key) Dims() int {
	return k.dims
}

// At returns component i.
func (k Key) At(i int) int {
	return k.k[i]
}

// Set sets component i.
func (k *Key) Set(i, v int) {
	k.k[i] = v
}

// With returns a copy of k with component i set to v.
func (k Key) With(i, v int) Key {
	k.k[i] = v
	return k
}

// Add returns the per-dimension sum of k and o.
func (k Key) Add(o Key) Key {
	for i := 0; i < k.dims; i++ {
		k.k[i] += o.k[i]
	}
	return k
}

// Sub returns the per-dimension difference of k and o.
func (k Key) Sub(o Key) Key {
	for i := 0; i < k.dims; i++ {
		k.k[i] -= o.k[i]
	}
	return k
}

// Slice returns the components as a new slice.
func (k Key) Slice() []int {
	out := make([]int, k.dims)
	copy(out, k.k[:k.dims])
	return out
}

func (k Key) String() string {
	return "(" + strings.Join(lo.Map(k.k[:k.dims], func(v int, _ int) string {
		return strconv.Itoa(v)
	}), ", ") + ")"
}

// GoString implements fmt.GoStringer.
func (k Key) GoString() string {
	return fmt.Sprintf("grid.NewKey%s", k.String())
}
