package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkers(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(NumWorkers(), Workers(0, 1<<30))
	assert.Equal(3, Workers(3, 10))
	assert.Equal(2, Workers(8, 2))
	assert.Equal(1, Workers(4, 0))
}

func TestForVisitsEveryIndexOnce(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 64} {
		var hits [100]int32
		For(0, len(hits), n, func(i int) {
			atomic.AddInt32(&hits[i], 1)
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("workers=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestForEmptyRange(t *testing.T) {
	called := false
	For(5, 5, 4, func(int) { called = true })
	For(5, 2, 4, func(int) { called = true })
	assert.False(t, called)
}

func TestMapKeepsOrder(t *testing.T) {
	got := Map(10, 20, 3, func(i int) int { return i * i })
	want := []int{100, 121, 144, 169, 196, 225, 256, 289, 324, 361}
	assert.Equal(t, want, got)
	assert.Nil(t, Map(3, 3, 2, func(i int) int { return i }))
}
