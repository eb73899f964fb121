package cache

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits       int64 // Lookups that found the key
	Misses     int64 // Lookups that did not
	Evictions  int64 // Entries removed by the capacity bound
	Loads      int64 // Load functions run by GetOrLoad
	LoadErrors int64 // Load functions that failed
	Len        int   // Current number of entries
	Capacity   int
}

// HitRatio returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
