package engine

import "golang.org/x/exp/constraints"

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// gcd returns the greatest common divisor of two non-negative integers.
// gcd(0, 0) is 0.
func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// floorDiv returns a/b rounded towards negative infinity, for b > 0.
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv returns a/b rounded towards positive infinity, for b > 0.
func ceilDiv[T constraints.Signed](a, b T) T {
	return -floorDiv(-a, b)
}
