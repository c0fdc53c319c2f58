package cache

import "testing"

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU[string, int](4)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache should miss")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %v, %v, want 2, true", v, ok)
	}
}

func TestLRU_UpdateExisting(t *testing.T) {
	c := NewLRU[string, int](4)
	c.Set("a", 1)
	c.Set("a", 9)

	if v, _ := c.Get("a"); v != 9 {
		t.Errorf("Get(a) = %v, want 9 after update", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRU_EvictsOldest(t *testing.T) {
	c := NewLRU[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)

	// Touch 1 so 2 becomes the eviction candidate.
	c.Get(1)
	c.Set(3, 3)

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("entry 1 should have survived")
	}
	if _, ok := c.Get(3); !ok {
		t.Error("entry 3 should be present")
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestLRU_Clear(t *testing.T) {
	c := NewLRU[int, string](8)
	c.Set(1, "x")
	c.Set(2, "y")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	if _, ok := c.Get(1); ok {
		t.Error("Get after Clear should miss")
	}
}

func TestLRU_Stats(t *testing.T) {
	c := NewLRU[int, int](2)
	c.Set(1, 1)
	c.Get(1)
	c.Get(1)
	c.Get(2)

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats = %+v, want 2 hits, 1 miss", s)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %v, want ~2/3", s.HitRate)
	}
}

func TestLRU_DefaultCapacity(t *testing.T) {
	c := NewLRU[int, int](0)
	for i := 0; i < DefaultCapacity+10; i++ {
		c.Set(i, i)
	}
	if c.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", c.Len(), DefaultCapacity)
	}
}
