// Package reference holds published MT19937 output tables and routines that
// compare a generator against them.
package reference

import (
	"fmt"

	"github.com/nozzle/mt19937"
)

// Mismatch is a stream position whose output differs from the table.
type Mismatch struct {
	Index uint64
	Got   uint32
	Want  uint32
}

// Stream is the part of a generator the checks drive. *mt19937.Generator
// implements it.
type Stream interface {
	Seed(seed uint32)
	SeedArray(key []uint32)
	Uint32() uint32
	Discard(n uint64)
}

var _ Stream = (*mt19937.Generator)(nil)

func (m Mismatch) String() string {
	return fmt.Sprintf("#%d: got %d want %d", m.Index, m.Got, m.Want)
}

// CheckSequence reseeds g with 1 and compares its first 200 outputs with
// Seed1First200.
func CheckSequence(g Stream) []Mismatch {
	g.Seed(1)
	var bad []Mismatch
	for i, want := range Seed1First200 {
		if got := g.Uint32(); got != want {
			bad = append(bad, Mismatch{Index: uint64(i), Got: got, Want: want})
		}
	}
	return bad
}

// CheckDoubled reseeds g with 1 and compares the outputs at positions 2^k-1,
// k = 0..maxK, with Seed1Doubled. maxK is clamped to [0, 32]; the full table
// walks 2^32 outputs.
func CheckDoubled(g Stream, maxK int) []Mismatch {
	maxK = min(max(maxK, 0), len(Seed1Doubled)-1)

	g.Seed(1)
	var bad []Mismatch
	var next uint64 // position of the next draw
	for k := 0; k <= maxK; k++ {
		pos := uint64(1)<<k - 1
		g.Discard(pos - next)
		got := g.Uint32()
		next = pos + 1
		if want := Seed1Doubled[k]; got != want {
			bad = append(bad, Mismatch{Index: pos, Got: got, Want: want})
		}
	}
	return bad
}

// CheckArray seeds g with ArrayKey and compares its first outputs with
// ArrayFirst10.
func CheckArray(g Stream) []Mismatch {
	g.SeedArray(ArrayKey)
	var bad []Mismatch
	for i, want := range ArrayFirst10 {
		if got := g.Uint32(); got != want {
			bad = append(bad, Mismatch{Index: uint64(i), Got: got, Want: want})
		}
	}
	return bad
}

// CheckDefault seeds g with mt19937.DefaultSeed and compares its 10000th
// output with DefaultSeed10000.
func CheckDefault(g Stream) []Mismatch {
	g.Seed(mt19937.DefaultSeed)
	g.Discard(9999)
	if got := g.Uint32(); got != DefaultSeed10000 {
		return []Mismatch{{Index: 9999, Got: got, Want: DefaultSeed10000}}
	}
	return nil
}
