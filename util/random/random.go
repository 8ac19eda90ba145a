// Package random generates cryptographically random alphanumeric strings.
package random

import (
	"crypto/rand"
	"math/big"
)

var allSeq [62]rune

func init() {
	i := 0
	for c := '0'; c <= '9'; c++ {
		allSeq[i] = c
		i++
	}
	for c := 'a'; c <= 'z'; c++ {
		allSeq[i] = c
		i++
	}
	for c := 'A'; c <= 'Z'; c++ {
		allSeq[i] = c
		i++
	}
}

// Seq returns a random alphanumeric string of length n.
func Seq(n int) string {
	runes := make([]rune, n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(allSeq))))
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		runes[i] = allSeq[idx.Int64()]
	}
	return string(runes)
}
