// Package utils provides shared helpers for circle domain construction
package utils

import "math/big"

// IsPowerOfTwoBig reports whether n is a positive power of two
func IsPowerOfTwoBig(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	// A power of two has exactly one set bit
	m := new(big.Int).Sub(n, big.NewInt(1))
	return new(big.Int).And(n, m).Sign() == 0
}

// Log2Big returns k where n = 2^k, or -1 if n is not a power of two
func Log2Big(n *big.Int) int {
	if !IsPowerOfTwoBig(n) {
		return -1
	}
	return n.BitLen() - 1
}
