package chart

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// IDSource supplies anchor ids for rendered fragments. Implementations must
// be cheap to call repeatedly; no registry of issued ids is kept, so
// collision avoidance rests on the source's output space being large
// relative to the handful of charts a page embeds.
type IDSource interface {
	NewID() string
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type tokenSource struct {
	prefix string
	length int
}

// NewTokenSource returns the default IDSource: ids of the form
// "<prefix>-<token>" where token is length random characters from [a-z0-9].
// The prefix keeps ids from starting with a digit. An 8-character token over
// this alphabet gives ~2.8e12 possibilities, so collisions within a page are
// negligible. Empty or non-positive arguments fall back to the defaults.
func NewTokenSource(prefix string, length int) IDSource {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	if length <= 0 {
		length = DefaultIDLength
	}
	return &tokenSource{prefix: prefix, length: length}
}

func (s *tokenSource) NewID() string {
	var b strings.Builder
	b.Grow(len(s.prefix) + 1 + s.length)
	b.WriteString(s.prefix)
	b.WriteByte('-')
	for i := 0; i < s.length; i++ {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return b.String()
}

// UUIDSource generates "<prefix>-<uuid>" ids. Longer than the token source's
// output, but collision-free for all practical purposes.
type UUIDSource struct {
	Prefix string
}

func (s UUIDSource) NewID() string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return prefix + "-" + uuid.NewString()
}
