package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const refCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateBookingReference returns a reference like "STH-4K9TQ2XB".
// Uses crypto/rand with math/big to avoid modulo bias.
func GenerateBookingReference(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	sb.WriteString("STH-")
	alphaLen := big.NewInt(int64(len(refCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(refCharset[num.Int64()])
	}
	return sb.String(), nil
}
