package ttlcache

import (
	"strconv"
	"testing"
	"time"
)

func BenchmarkCache_Get(b *testing.B) {
	cache := New[string, int]()

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		cache.Insert(keys[i], i, time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(keys[i%100])
	}
}

func BenchmarkCache_Insert(b *testing.B) {
	cache := New[string, int](WithCapacity[string, int](b.N + 1))

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Insert(keys[i], i, time.Hour)
	}
}

func BenchmarkCache_InsertWithSweep(b *testing.B) {
	clk := &mockClock{now: time.Now()}
	cache := New[string, int](WithClock[string, int](clk))

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Insert(keys[i], i, 100*time.Millisecond)
		clk.Advance(time.Millisecond)
	}
}

func BenchmarkCache_Iter(b *testing.B) {
	cache := New[int, int]()
	for i := range 1000 {
		cache.Insert(i, i, time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range cache.All() {
		}
	}
}

func BenchmarkLocked_Parallel(b *testing.B) {
	cache := NewLocked[string, int]()

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		cache.Insert(keys[i], i, time.Hour)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				cache.Get(keys[i%100])
			} else {
				cache.Insert(keys[i%100], i, time.Hour)
			}
			i++
		}
	})
}
