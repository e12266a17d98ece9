package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphaNumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateAlphaNumericCode - generates a random alphanumeric string of the
// given length, suitable for access and session codes.
func GenerateAlphaNumericCode(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphaNumeric))))
		if err != nil {
			// crypto/rand only fails when the platform entropy source is broken
			panic(fmt.Errorf("failed to read random source: %w", err))
		}
		buf[i] = alphaNumeric[n.Int64()]
	}

	return string(buf)
}
