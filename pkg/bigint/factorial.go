package bigint

import (
	"math"

	"github.com/pkg/errors"
)

// ErrNegativeFactorial is returned by Factorial for negative operands.
var ErrNegativeFactorial = errors.New("factorial of negative number")

// Factorial returns n! exactly.
func Factorial(n int64) (*Int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeFactorial, "%d!", n)
	}

	// Multiply natively until the running product would overflow, then start
	// a new partial product. The partials are combined with a product tree so
	// that the big multiplications stay balanced.
	var partials []*Int
	acc := int64(1)
	for i := int64(2); i <= n; i++ {
		if acc > math.MaxInt64/i {
			partials = append(partials, New(acc))
			acc = i
			continue
		}
		acc *= i
	}
	partials = append(partials, New(acc))

	return product(partials), nil
}

func product(f []*Int) *Int {
	switch len(f) {
	case 0:
		return New(1)
	case 1:
		return f[0]
	}
	n := len(f) / 2
	return product(f[:n]).Mul(product(f[n:]))
}
