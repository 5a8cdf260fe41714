package ttlcache

import (
	"sync"
	"time"
)

func (s *CacheSuite) newLocked() *Locked[int, int] {
	return NewLocked(
		WithClock[int, int](s.clk),
		WithStats[int, int](),
	)
}

func (s *CacheSuite) TestLocked() {
	l := s.newLocked()

	_, ok := l.Insert(1, 10, time.Second)
	s.False(ok)

	v, ok := l.Get(1)
	s.True(ok)
	s.Equal(10, v)
	s.True(l.ContainsKey(1))

	s.True(l.Update(1, func(p *int) { *p++ }))
	s.False(l.Update(2, func(p *int) { *p++ }))

	s.clk.Advance(800 * time.Millisecond)
	v, ok = l.GetProlong(1)
	s.True(ok)
	s.Equal(11, v)

	s.clk.Advance(800 * time.Millisecond)
	l.ResetTTL(1)
	s.clk.Advance(800 * time.Millisecond)
	s.True(l.ContainsKey(1))

	v, ok = l.Remove(1)
	s.True(ok)
	s.Equal(11, v)
	s.Equal(0, l.Len())

	s.Equal(uint64(5), l.Stats().Hits)
	s.Equal(uint64(1), l.Stats().Misses)
}

func (s *CacheSuite) TestLockedRangeAndDo() {
	l := s.newLocked()

	l.Insert(1, 10, time.Millisecond)
	l.Insert(2, 20, time.Minute)
	l.Insert(3, 30, time.Minute)
	s.clk.Advance(time.Second)

	s.Equal(1, l.RemoveExpired())

	var got []int
	l.Range(func(k, v int) bool {
		got = append(got, k)
		return true
	})
	s.Equal([]int{2, 3}, got)

	l.Do(func(c *Cache[int, int]) {
		if e, ok := c.Entry(4).(*VacantEntry[int, int]); ok {
			e.Insert(40, time.Minute)
		}
	})
	v, ok := l.Get(4)
	s.True(ok)
	s.Equal(40, v)

	l.Clear()
	s.Equal(0, l.Len())
}

func (s *CacheSuite) TestLockedConcurrentAccess() {
	l := NewLocked[int, int](WithStats[int, int]())

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Insert(n, n*2, time.Minute)
			l.Get(n)
			l.ContainsKey(n)
			l.Update(n, func(p *int) { *p++ })
			l.Range(func(int, int) bool { return true })
			l.Remove(n)
		}(i)
	}
	wg.Wait()

	s.Equal(0, l.Len())
	s.Equal(uint64(300), l.Stats().Hits)
}
