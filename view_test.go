package ttlcache

import "time"

func (s *CacheSuite) TestEntryVacantInsert() {
	c := s.newCache()

	e := c.Entry("a")
	s.Equal("a", e.Key())

	vacant, ok := e.(*VacantEntry[string, int])
	s.Require().True(ok)

	p := vacant.Insert(7, time.Minute)
	s.Equal(7, *p)

	v, ok := c.Get("a")
	s.True(ok)
	s.Equal(7, v)

	*p = 8
	v, _ = c.Get("a")
	s.Equal(8, v)
}

func (s *CacheSuite) TestEntryVacantInsertTwicePanics() {
	c := s.newCache()

	vacant := c.Entry("a").(*VacantEntry[string, int])
	vacant.Insert(1, time.Minute)

	s.Panics(func() { vacant.Insert(2, time.Minute) })
}

func (s *CacheSuite) TestEntryExpiredIsVacant() {
	c := s.newCache()

	c.Insert("keep", 0, time.Minute)
	c.Insert("a", 1, 100*time.Millisecond)
	s.clk.Advance(time.Second)

	e := c.Entry("a")
	s.IsType(&VacantEntry[string, int]{}, e)
	s.Equal(1, c.Len(), "expired record is dropped before the view is built")
}

func (s *CacheSuite) TestEntryOccupied() {
	c := s.newCache()

	c.Insert("a", 1, time.Second)
	c.Insert("b", 2, time.Minute)

	occupied, ok := c.Entry("a").(*OccupiedEntry[string, int])
	s.Require().True(ok)
	s.Equal("a", occupied.Key())
	s.Equal(1, occupied.Get())

	*occupied.GetMut() = 5
	s.Equal(5, occupied.Get())

	old := occupied.Insert(6, time.Minute)
	s.Equal(5, old)
	s.Equal(6, occupied.Get())

	old = occupied.Insert(7, time.Minute)
	s.Equal(6, old)

	s.Equal([]string{"b", "a"}, keys(c))

	// the new ttl applies
	s.clk.Advance(2 * time.Second)
	v, ok := c.Get("a")
	s.True(ok)
	s.Equal(7, v)
}

func (s *CacheSuite) TestEntryOccupiedInsertDoesNotSweep() {
	c := s.newCache()

	c.Insert("old", 0, time.Millisecond)
	c.Insert("a", 1, time.Minute)
	s.clk.Advance(time.Second)

	occupied := c.Entry("a").(*OccupiedEntry[string, int])
	occupied.Insert(2, time.Minute)

	s.Equal(2, c.Len())
}

func (s *CacheSuite) TestEntryOccupiedGetMutKeepsDeadline() {
	c := s.newCache()

	c.Insert("a", 1, time.Second)
	s.clk.Advance(500 * time.Millisecond)

	occupied := c.Entry("a").(*OccupiedEntry[string, int])
	*occupied.GetMut() = 2

	s.clk.Advance(600 * time.Millisecond)
	_, ok := c.Get("a")
	s.False(ok)
}

func (s *CacheSuite) TestGetOrInsertWith() {
	c := s.newCache()

	calls := 0
	mk := func() int {
		calls++
		return 10
	}

	p := c.GetOrInsertWith("a", mk, time.Second)
	s.Equal(10, *p)
	*p++

	p = c.GetOrInsertWith("a", mk, time.Second)
	s.Equal(11, *p)
	s.Equal(1, calls)

	s.clk.Advance(2 * time.Second)

	p = c.GetOrInsertWith("a", mk, time.Second)
	s.Equal(10, *p)
	s.Equal(2, calls)
}
