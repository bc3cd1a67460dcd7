package test

import (
	"math/rand"
	"sync"
	"time"
)

const loginAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomLogin returns a pseudo-random login accepted by the default login pattern.
// When maxLen equals minLen the resulting login always has that exact length.
func RandomLogin(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = loginAlphabet[randomIntn(len(loginAlphabet))]
	}
	return string(buf)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
