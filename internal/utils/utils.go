package utils

import "encoding/binary"

// KeyBytes - Returns the key as 8 little endian bytes, the form byte oriented hash functions are fed
func KeyBytes(key int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(key))
	return b
}

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NearestPrime - Returns the smallest prime number that is greater than or equal to n
func NearestPrime(n int64) int64 {
	if n <= 2 {
		return 2
	}

	for !IsPrime(n) {
		n++
	}

	return n
}
