package system

import "sync/atomic"

// Stats counts what the physics pipeline did. Safe to read from another goroutine.
type Stats struct {
	Ticks           int64
	DynamicOverlaps int64
	StaticOverlaps  int64
	TerrainOverlaps int64
	Deaths          int64
	Dropped         int64 // terrain signals the resolver could not act on
	TotalTickNs     int64
}

// AddTick records one completed tick
func (m *Stats) AddTick(r TickReport, terrain, dropped int, ns int64) {
	atomic.AddInt64(&m.Ticks, 1)
	atomic.AddInt64(&m.DynamicOverlaps, int64(len(r.Dynamic)))
	atomic.AddInt64(&m.StaticOverlaps, int64(len(r.Static)))
	atomic.AddInt64(&m.TerrainOverlaps, int64(terrain))
	atomic.AddInt64(&m.Deaths, int64(len(r.Deaths)))
	atomic.AddInt64(&m.Dropped, int64(dropped))
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// StatsSnapshot is a read-only copy of Stats
type StatsSnapshot struct {
	Ticks           int64
	DynamicOverlaps int64
	StaticOverlaps  int64
	TerrainOverlaps int64
	Deaths          int64
	Dropped         int64
	AvgTickMs       float64
}

// Snapshot returns a consistent-enough copy for display and logging
func (m *Stats) Snapshot() StatsSnapshot {
	ticks := atomic.LoadInt64(&m.Ticks)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if ticks > 0 {
		avgMs = float64(total) / float64(ticks) / 1e6
	}
	return StatsSnapshot{
		Ticks:           ticks,
		DynamicOverlaps: atomic.LoadInt64(&m.DynamicOverlaps),
		StaticOverlaps:  atomic.LoadInt64(&m.StaticOverlaps),
		TerrainOverlaps: atomic.LoadInt64(&m.TerrainOverlaps),
		Deaths:          atomic.LoadInt64(&m.Deaths),
		Dropped:         atomic.LoadInt64(&m.Dropped),
		AvgTickMs:       avgMs,
	}
}
