package token

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var ErrInvalidLength = errors.New("code length must be positive")

// NumericCode returns a fixed-width string of random decimal digits.
// Leading zeros are kept, so a 6-digit code may start with "0".
func NumericCode(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
