package mt19937

import (
	"math/rand"
	randv2 "math/rand/v2"

	exprand "golang.org/x/exp/rand"
)

var (
	_ randv2.Source  = (*Generator)(nil)
	_ rand.Source64  = (*Source)(nil)
	_ exprand.Source = (*ExpSource)(nil)
	_ randv2.Source  = (*Locked)(nil)
)

// Source adapts a Generator to math/rand.Source64. Seeds are truncated to
// their low 32 bits.
type Source struct {
	g Generator
}

// NewSource returns a math/rand source seeded with the low 32 bits of seed.
func NewSource(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed reseeds the underlying generator with uint32(seed).
func (s *Source) Seed(seed int64) {
	s.g.Seed(uint32(seed))
}

// Int63 returns the top 63 bits of a 64-bit draw.
func (s *Source) Int63() int64 {
	return int64(s.g.Uint64() >> 1)
}

// Uint64 returns a 64-bit draw.
func (s *Source) Uint64() uint64 {
	return s.g.Uint64()
}

// ExpSource adapts a Generator to golang.org/x/exp/rand.Source. Seeds are
// truncated to their low 32 bits.
type ExpSource struct {
	g Generator
}

// NewExpSource returns an x/exp/rand source seeded with the low 32 bits of
// seed.
func NewExpSource(seed uint64) *ExpSource {
	s := &ExpSource{}
	s.Seed(seed)
	return s
}

// Seed reseeds the underlying generator with uint32(seed).
func (s *ExpSource) Seed(seed uint64) {
	s.g.Seed(uint32(seed))
}

// Uint64 returns a 64-bit draw.
func (s *ExpSource) Uint64() uint64 {
	return s.g.Uint64()
}
