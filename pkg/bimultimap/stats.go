package bimultimap

import (
	"github.com/caio/go-tdigest/v4"
	"github.com/rs/zerolog"

	"github.com/goose121/bimultimap/pkg/bmerrors"
)

const defaultTDigestCompression = float64(100)

// Stats describes how relations are spread over the bucket grid.
type Stats struct {
	Rows      int
	Cols      int
	Relations int

	// EmptyBuckets is the number of buckets holding no relation.
	EmptyBuckets int

	// MaxOccupancy is the number of relations in the fullest bucket.
	MaxOccupancy int

	// LoadFactor is the mean number of relations per bucket.
	LoadFactor float64

	// P50Occupancy, P90Occupancy and P99Occupancy are estimated quantiles of
	// the number of relations per bucket.
	P50Occupancy float64
	P90Occupancy float64
	P99Occupancy float64
}

// Stats computes occupancy statistics by visiting every bucket. It does not
// modify the map.
func (m *BiMultiMap[K, V]) Stats() (Stats, error) {
	digest, err := tdigest.New(tdigest.Compression(defaultTDigestCompression))
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Rows:      m.buckets.rows,
		Cols:      m.buckets.cols,
		Relations: m.size,
	}

	total := 0
	for i := range m.buckets.cells {
		occupancy := m.buckets.cells[i].Len()
		total += occupancy
		if occupancy == 0 {
			stats.EmptyBuckets++
		}
		stats.MaxOccupancy = max(stats.MaxOccupancy, occupancy)

		if err := digest.Add(float64(occupancy)); err != nil {
			return Stats{}, err
		}
	}

	bmerrors.DebugAssertf(func() bool { return total == m.size },
		"buckets hold %d relations but the map counts %d", total, m.size)

	stats.LoadFactor = float64(m.size) / float64(len(m.buckets.cells))
	stats.P50Occupancy = digest.Quantile(0.5)
	stats.P90Occupancy = digest.Quantile(0.9)
	stats.P99Occupancy = digest.Quantile(0.99)
	return stats, nil
}

// Buckets returns the total number of buckets in the grid.
func (s Stats) Buckets() int { return s.Rows * s.Cols }

// MarshalZerologObject implements zerolog object marshalling.
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("rows", s.Rows).
		Int("cols", s.Cols).
		Int("relations", s.Relations).
		Int("empty_buckets", s.EmptyBuckets).
		Int("max_occupancy", s.MaxOccupancy).
		Float64("load_factor", s.LoadFactor).
		Float64("p50_occupancy", s.P50Occupancy).
		Float64("p90_occupancy", s.P90Occupancy).
		Float64("p99_occupancy", s.P99Occupancy)
}
