package mt19937

import "sync"

// Locked is a Generator guarded by a mutex. It is safe for concurrent use,
// at the cost of serializing every draw.
type Locked struct {
	mu sync.Mutex
	g  Generator
}

// NewLocked returns a locked generator seeded with seed.
func NewLocked(seed uint32) *Locked {
	l := &Locked{}
	l.g.Seed(seed)
	return l
}

// Seed reseeds the generator. See Generator.Seed.
func (l *Locked) Seed(seed uint32) {
	l.mu.Lock()
	l.g.Seed(seed)
	l.mu.Unlock()
}

// Uint32 returns the next 32-bit value of the stream.
func (l *Locked) Uint32() uint32 {
	l.mu.Lock()
	v := l.g.Uint32()
	l.mu.Unlock()
	return v
}

// Uint64 returns two consecutive draws combined, high word first. Both words
// are taken under one lock, so concurrent callers never interleave them.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	v := l.g.Uint64()
	l.mu.Unlock()
	return v
}

// Float32 returns a float32 in [0, 1].
func (l *Locked) Float32() float32 {
	l.mu.Lock()
	v := l.g.Float32()
	l.mu.Unlock()
	return v
}

// Float64 returns a float64 in [0, 1].
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	v := l.g.Float64()
	l.mu.Unlock()
	return v
}

var (
	defaultOnce sync.Once
	defaultGen  *Locked
)

// Default returns the process-wide stream. It is created on first use,
// seeded with DefaultSeed, and never reseeded unless a caller calls Seed on
// it explicitly.
func Default() *Locked {
	defaultOnce.Do(func() {
		defaultGen = NewLocked(DefaultSeed)
	})
	return defaultGen
}
