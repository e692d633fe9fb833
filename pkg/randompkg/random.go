// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Name generates a random capitalized first name.
func Name() string {
	s := String(6)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Email generates a random email address.
func Email() string {
	return String(8) + "@" + String(5) + ".com"
}

// Amount generates a random positive amount string with two decimals.
func Amount() string {
	units := decimal.NewFromInt(Intn(10_000) + 1)
	cents := decimal.NewFromInt(Intn(100)).Div(decimal.NewFromInt(100))

	return units.Add(cents).StringFixed(2)
}

// ID generates a random positive identifier.
func ID() int64 {
	return Intn(1_000_000) + 1
}
