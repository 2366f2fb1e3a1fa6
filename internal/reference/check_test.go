package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nozzle/mt19937"
)

func TestChecksPass(t *testing.T) {
	g := mt19937.New(12345)

	assert.Empty(t, CheckSequence(g))
	assert.Empty(t, CheckArray(g))
	assert.Empty(t, CheckDefault(g))
	assert.Empty(t, CheckDoubled(g, 16))
}

func TestCheckDoubledClampsK(t *testing.T) {
	g := mt19937.New(0)
	assert.Empty(t, CheckDoubled(g, -4))
	// Only position 0 was drawn.
	assert.Equal(t, Seed1First200[1], g.Uint32())
}

func TestCheckSequenceLeavesStreamAfterTable(t *testing.T) {
	g := mt19937.New(0)
	CheckSequence(g)

	h := mt19937.New(1)
	h.Discard(uint64(len(Seed1First200)))
	assert.Equal(t, h.Uint32(), g.Uint32())
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{Index: 7, Got: 1, Want: 2}
	assert.Equal(t, "#7: got 1 want 2", m.String())
}

func TestTablesAgree(t *testing.T) {
	// The doubled table overlaps the first 200 values for k <= 7.
	for k := 0; k <= 7; k++ {
		assert.Equal(t, Seed1First200[1<<k-1], Seed1Doubled[k], "k=%d", k)
	}
}

// corrupted flips the low bit of the output at one stream position.
type corrupted struct {
	*mt19937.Generator
	at  uint64
	pos uint64
}

func (c *corrupted) Seed(seed uint32) {
	c.Generator.Seed(seed)
	c.pos = 0
}

func (c *corrupted) SeedArray(key []uint32) {
	c.Generator.SeedArray(key)
	c.pos = 0
}

func (c *corrupted) Discard(n uint64) {
	c.Generator.Discard(n)
	c.pos += n
}

func (c *corrupted) Uint32() uint32 {
	v := c.Generator.Uint32()
	if c.pos == c.at {
		v ^= 1
	}
	c.pos++
	return v
}

func TestChecksReportMismatch(t *testing.T) {
	g := &corrupted{Generator: mt19937.New(0), at: 7}

	assert.Equal(t, []Mismatch{{Index: 7, Got: Seed1First200[7] ^ 1, Want: Seed1First200[7]}},
		CheckSequence(g))
	assert.Equal(t, []Mismatch{{Index: 7, Got: ArrayFirst10[7] ^ 1, Want: ArrayFirst10[7]}},
		CheckArray(g))
	assert.Equal(t, []Mismatch{{Index: 7, Got: Seed1Doubled[3] ^ 1, Want: Seed1Doubled[3]}},
		CheckDoubled(g, 10))
	assert.Empty(t, CheckDefault(g))
}

func TestCheckDefaultReportsMismatch(t *testing.T) {
	g := &corrupted{Generator: mt19937.New(0), at: 9999}

	assert.Equal(t, []Mismatch{{Index: 9999, Got: DefaultSeed10000 ^ 1, Want: DefaultSeed10000}},
		CheckDefault(g))
	assert.Empty(t, CheckSequence(g))
	assert.Empty(t, CheckDoubled(g, 16))
}
