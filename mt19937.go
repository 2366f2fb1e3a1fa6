// Package mt19937 implements the MT19937 Mersenne Twister pseudo-random number
// generator of Matsumoto and Nishimura, bit-for-bit compatible with the
// reference mt19937ar.c.
//
// The generator has a state of 624 32-bit words and a period of 2^19937-1. It
// is fast and well distributed, which makes it a good fit for simulation work
// such as Monte Carlo methods where runs must be reproducible from a seed.
//
// MT19937 is not cryptographically secure: after observing 624 consecutive
// outputs the whole future stream can be predicted.
//
// Basic usage:
//
//	g := mt19937.New(1)
//	x := g.Uint32() // 1791095845
//	f := g.Float64() // in [0, 1]
//
// A Generator is not safe for concurrent use. Give every goroutine its own
// Generator, or wrap a shared one in a Locked.
package mt19937

const (
	// N is the number of 32-bit words in the generator state.
	N = 624
	// M is the middle word offset used by the twist recurrence.
	M = 397

	// DefaultSeed is the seed used by the reference implementation when a
	// generator is drawn from before it was seeded.
	DefaultSeed = 5489

	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	initMult = 1812433253
)

// Generator is an MT19937 stream.
//
// The zero value is ready to use and behaves as if seeded with DefaultSeed.
type Generator struct {
	mt [N]uint32

	// left counts the words of the current batch that have not been
	// tempered yet; the batch cursor is N-left. Zero forces a twist on the
	// next draw.
	left   int
	seeded bool
}

// New returns a generator seeded with seed.
func New(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// Seed (re)initializes the whole state from seed. Any previous state and
// position in the stream are discarded.
func (g *Generator) Seed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < N; i++ {
		g.mt[i] = initMult*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.left = 0
	g.seeded = true
}

// SeedArray initializes the state from a key of arbitrary length, as
// init_by_array does in the reference implementation. An empty key is
// treated as the single word 0.
func (g *Generator) SeedArray(key []uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}
	g.Seed(19650218)

	i, j := 1, 0
	k := N
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= N {
			g.mt[0] = g.mt[N-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = N - 1; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= N {
			g.mt[0] = g.mt[N-1]
			i = 1
		}
	}

	// MSB is 1, assuring a non-zero initial state.
	g.mt[0] = upperMask
}

// twist regenerates all N words in place, in increasing index order. Reads
// that wrap past the end of the array see words already regenerated by this
// pass, exactly as in the reference.
func (g *Generator) twist() {
	mag01 := [2]uint32{0, matrixA}
	mt := &g.mt

	var y uint32
	kk := 0
	for ; kk < N-M; kk++ {
		y = (mt[kk] & upperMask) | (mt[kk+1] & lowerMask)
		mt[kk] = mt[kk+M] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < N-1; kk++ {
		y = (mt[kk] & upperMask) | (mt[kk+1] & lowerMask)
		mt[kk] = mt[kk+(M-N)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (mt[N-1] & upperMask) | (mt[0] & lowerMask)
	mt[N-1] = mt[M-1] ^ (y >> 1) ^ mag01[y&1]
}

// refill starts a new batch, seeding with DefaultSeed first if the generator
// was never seeded.
func (g *Generator) refill() {
	if !g.seeded {
		g.Seed(DefaultSeed)
	}
	g.twist()
	g.left = N
}

// temper is the output transform applied to a raw state word.
func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

// Uint32 returns the next 32-bit value of the stream.
func (g *Generator) Uint32() uint32 {
	if g.left == 0 {
		g.refill()
	}
	y := g.mt[N-g.left]
	g.left--
	return temper(y)
}

// Uint64 combines two consecutive 32-bit draws, the first one in the high
// word.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	return hi<<32 | uint64(g.Uint32())
}

// Discard advances the stream by n draws. Whole batches are skipped with a
// twist and without tempering, so this is much cheaper than calling Uint32 n
// times.
func (g *Generator) Discard(n uint64) {
	for n > 0 {
		if g.left == 0 {
			g.refill()
		}
		k := uint64(g.left)
		if n < k {
			k = n
		}
		g.left -= int(k)
		n -= k
	}
}
