package mt19937

import "math"

// Float32 returns a float32 in the closed interval [0, 1]: one 32-bit draw
// divided by 2^32-1.
func (g *Generator) Float32() float32 {
	return float32(g.Uint32()) / float32(math.MaxUint32)
}

// Float64 returns a float64 in the closed interval [0, 1]: one 32-bit draw
// divided by 2^32-1. Use Float64Res53 for full 53-bit resolution.
func (g *Generator) Float64() float64 {
	return float64(g.Uint32()) / 4294967295.0
}

// Float32CO returns a float32 in [0, 1). Only the top 24 bits of the draw are
// used so that rounding can never produce 1.
func (g *Generator) Float32CO() float32 {
	return float32(g.Uint32()>>8) * (1.0 / 16777216.0)
}

// Float64CO returns a float64 in [0, 1).
func (g *Generator) Float64CO() float64 {
	return float64(g.Uint32()) * (1.0 / 4294967296.0)
}

// Float32OO returns a float32 in the open interval (0, 1), built from the top
// 23 bits of the draw.
func (g *Generator) Float32OO() float32 {
	return (float32(g.Uint32()>>9) + 0.5) * (1.0 / 8388608.0)
}

// Float64OO returns a float64 in the open interval (0, 1).
func (g *Generator) Float64OO() float64 {
	return (float64(g.Uint32()) + 0.5) * (1.0 / 4294967296.0)
}

// Float64Res53 returns a float64 in [0, 1) with 53-bit resolution, built from
// two draws like genrand_res53.
func (g *Generator) Float64Res53() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Int31 returns a non-negative int32 from the low 31 bits of a draw.
func (g *Generator) Int31() int32 {
	return int32(g.Uint32() & lowerMask)
}

// Intn returns a uniform int in [0, n). Draws that would bias the result are
// rejected. It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic("mt19937: invalid argument to Intn")
	}
	if uint64(n) <= math.MaxUint32 {
		bound := uint32(n)
		threshold := -bound % bound
		for {
			v := g.Uint32()
			if v >= threshold {
				return int(v % bound)
			}
		}
	}
	bound := uint64(n)
	threshold := -bound % bound
	for {
		v := g.Uint64()
		if v >= threshold {
			return int(v % bound)
		}
	}
}

// Uniform returns a float64 in [low, high).
func (g *Generator) Uniform(low, high float64) float64 {
	return low + (high-low)*g.Float64CO()
}

// Shuffle permutes n elements with the Fisher-Yates algorithm, calling swap
// to exchange elements i and j. It panics if n < 0.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("mt19937: invalid argument to Shuffle")
	}
	for i := n - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		swap(i, j)
	}
}
