// instrument/cache.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instrument

import (
	gomath "math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mmp/windward/math"
	"github.com/mmp/windward/sail"
)

// zoneKey quantizes every observation field a zone provider reads, so
// that readings within a quarter degree or quarter knot of each other
// share a cache entry.
type zoneKey struct {
	heading int32
	twd     int32
	tws     int32
}

func quantize(v float64) int32 {
	if !math.IsFinite(v) {
		return gomath.MinInt32
	}
	return int32(gomath.Round(v * 4))
}

// CachedZones wraps a ZoneProvider with a small expiring LRU. Compass
// telemetry jitters by fractions of a degree between display refreshes;
// quantizing the key turns that jitter into cache hits instead of
// rebuilt zone lists. Returned slices are shared between hits and must
// be treated as read-only.
type CachedZones struct {
	provider ZoneProvider
	cache    *expirable.LRU[zoneKey, []sail.Zone]
}

func NewCachedZones(zp ZoneProvider) *CachedZones {
	return &CachedZones{
		provider: zp,
		cache:    expirable.NewLRU[zoneKey, []sail.Zone](64, nil, time.Minute),
	}
}

func (c *CachedZones) Zones(obs Observation) []sail.Zone {
	key := zoneKey{
		heading: quantize(obs.Heading),
		twd:     quantize(obs.TWD),
		tws:     quantize(obs.TWS),
	}
	if zones, ok := c.cache.Get(key); ok {
		return zones
	}

	zones := c.provider.Zones(obs)
	c.cache.Add(key, zones)
	return zones
}
