package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	"github.com/ccoveille/go-safecast/v2"
	"github.com/schollz/progressbar/v3"

	log "github.com/goose121/bimultimap/internal/logging"
	"github.com/goose121/bimultimap/pkg/bimultimap"
	"github.com/goose121/bimultimap/pkg/genutil/mapz"
)

const (
	// SeededHasher selects the default randomized-seed hasher.
	SeededHasher = "seeded"

	// XXHasher selects the xxHash64 string hasher, seeded with the run seed.
	XXHasher = "xxhash"

	cancellationCheckInterval = 4096

	// MaxLookups bounds Config.Lookups; the probe keys are generated up front.
	MaxLookups = 1 << 24
)

// Hashers lists the accepted values of Config.Hasher.
var Hashers = []string{SeededHasher, XXHasher}

//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . Config
type Config struct {
	Rows       uint64 `debugmap:"visible" default:"1024"`
	Cols       uint64 `debugmap:"visible" default:"1024"`
	Relations  uint64 `debugmap:"visible" default:"100000"`
	KeySpace   uint64 `debugmap:"visible" default:"4096"`
	ValueSpace uint64 `debugmap:"visible" default:"4096"`
	Lookups    uint64 `debugmap:"visible" default:"10000"`
	Hasher     string `debugmap:"visible" default:"seeded"`
	Seed       uint64 `debugmap:"visible"`
	Verify     bool   `debugmap:"visible"`
	Progress   bool   `debugmap:"visible"`
}

// Benchmark is a completed Config, ready to run.
type Benchmark struct {
	config    Config
	seed      uint64
	relations int64
	m         *bimultimap.BiMultiMap[string, string]
}

// Complete validates the configuration and allocates the map under test.
func (c *Config) Complete() (*Benchmark, error) {
	if c.KeySpace == 0 || c.ValueSpace == 0 {
		return nil, fmt.Errorf("key space and value space must be positive, got %d and %d", c.KeySpace, c.ValueSpace)
	}

	rows, err := safecast.Convert[int](c.Rows)
	if err != nil {
		return nil, fmt.Errorf("invalid number of rows: %w", err)
	}
	cols, err := safecast.Convert[int](c.Cols)
	if err != nil {
		return nil, fmt.Errorf("invalid number of cols: %w", err)
	}
	relations, err := safecast.Convert[int64](c.Relations)
	if err != nil {
		return nil, fmt.Errorf("invalid number of relations: %w", err)
	}
	if c.Lookups > MaxLookups {
		return nil, fmt.Errorf("invalid number of lookups %d: must be at most %d", c.Lookups, MaxLookups)
	}

	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	var m *bimultimap.BiMultiMap[string, string]
	switch c.Hasher {
	case SeededHasher:
		m, err = bimultimap.New[string, string](rows, cols)
	case XXHasher:
		m, err = bimultimap.NewWithHashers(rows, cols,
			bimultimap.NewStringHasher[string](seed),
			bimultimap.NewStringHasher[string](seed),
		)
	default:
		return nil, fmt.Errorf("unknown hasher %q, must be one of %v", c.Hasher, Hashers)
	}
	if err != nil {
		return nil, err
	}

	return &Benchmark{config: *c, seed: seed, relations: relations, m: m}, nil
}

// Report is the outcome of a benchmark run.
type Report struct {
	Config Config
	Seed   uint64

	Inserted   uint64
	Duplicates uint64
	InsertTime time.Duration

	KeyLookups      uint64
	KeyResults      uint64
	KeyLookupTime   time.Duration
	ValueLookups    uint64
	ValueResults    uint64
	ValueLookupTime time.Duration

	Verified       bool
	DistinctKeys   int
	DistinctValues int
	Stats          bimultimap.Stats
}

func keyName(n uint64) string   { return "k" + strconv.FormatUint(n, 10) }
func valueName(n uint64) string { return "v" + strconv.FormatUint(n, 10) }

// Run fills the map with random relations, then times lookups by key and by
// value. Progress, when enabled, is rendered to progressOut.
func (b *Benchmark) Run(ctx context.Context, progressOut io.Writer) (*Report, error) {
	cfg := b.config
	rng := rand.New(rand.NewPCG(b.seed, b.seed^0x9e3779b97f4a7c15))
	logger := log.Component("bench")

	logger.Info().
		Uint64("seed", b.seed).
		Str("hasher", cfg.Hasher).
		Object("map", b.m).
		Msg("starting benchmark")

	report := &Report{Config: cfg, Seed: b.seed}

	var valuesByKey, keysByValue *mapz.CountingMultiMap[string, string]
	if cfg.Verify {
		valuesByKey = mapz.NewCountingMultiMap[string, string]()
		keysByValue = mapz.NewCountingMultiMap[string, string]()
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress && progressOut != nil {
		bar = progressbar.NewOptions64(b.relations,
			progressbar.OptionSetWriter(progressOut),
			progressbar.OptionSetDescription("inserting relations"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	start := time.Now()
	for i := range cfg.Relations {
		if i%cancellationCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		key := keyName(rng.Uint64N(cfg.KeySpace))
		value := valueName(rng.Uint64N(cfg.ValueSpace))
		if b.m.Insert(key, value) {
			report.Inserted++
			if cfg.Verify {
				valuesByKey.Add(key, value)
				keysByValue.Add(value, key)
			}
		} else {
			report.Duplicates++
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	report.InsertTime = time.Since(start)

	if bar != nil {
		if err := bar.Finish(); err != nil {
			logger.Warn().Err(err).Msg("failed to finish progress bar")
		}
	}

	keys := make([]string, cfg.Lookups)
	values := make([]string, cfg.Lookups)
	for i := range cfg.Lookups {
		keys[i] = keyName(rng.Uint64N(cfg.KeySpace))
		values[i] = valueName(rng.Uint64N(cfg.ValueSpace))
	}

	start = time.Now()
	for _, key := range keys {
		for range b.m.KeyIter(key) {
			report.KeyResults++
		}
	}
	report.KeyLookupTime = time.Since(start)
	report.KeyLookups = cfg.Lookups

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	for _, value := range values {
		for range b.m.ValueIter(value) {
			report.ValueResults++
		}
	}
	report.ValueLookupTime = time.Since(start)
	report.ValueLookups = cfg.Lookups

	if cfg.Verify {
		if err := verify(b.m, valuesByKey, keysByValue, keys, values); err != nil {
			return nil, err
		}
		report.Verified = true
		report.DistinctKeys = valuesByKey.KeyCount()
		report.DistinctValues = keysByValue.KeyCount()
	}

	stats, err := b.m.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute occupancy stats: %w", err)
	}
	report.Stats = stats

	logger.Info().EmbedObject(stats).Msg("benchmark complete")
	return report, nil
}

// MismatchError is returned when the map disagrees with the reference model.
type MismatchError struct {
	Direction string
	Probe     string
	Expected  []string
	Got       []string
}

func (err MismatchError) Error() string {
	return fmt.Sprintf("lookup by %s %q returned %v, expected %v", err.Direction, err.Probe, err.Got, err.Expected)
}

func verify(
	m *bimultimap.BiMultiMap[string, string],
	valuesByKey, keysByValue *mapz.CountingMultiMap[string, string],
	keys, values []string,
) error {
	if m.Len() != valuesByKey.Len() {
		return fmt.Errorf("map holds %d relations, expected %d", m.Len(), valuesByKey.Len())
	}

	check := func(direction, probe string, expected, got []string) error {
		slices.Sort(expected)
		slices.Sort(got)
		if !slices.Equal(expected, got) {
			return MismatchError{Direction: direction, Probe: probe, Expected: expected, Got: got}
		}
		return nil
	}

	for _, key := range keys {
		if err := check("key", key, valuesByKey.Get(key), m.ValuesOf(key)); err != nil {
			return err
		}
	}
	for _, value := range values {
		if err := check("value", value, keysByValue.Get(value), m.KeysOf(value)); err != nil {
			return err
		}
	}

	// Every stored key and value must report the model's fan-out, not only the
	// probed ones.
	for _, key := range slices.Collect(valuesByKey.Keys()) {
		if got := len(m.ValuesOf(key)); got != valuesByKey.CountOf(key) {
			return fmt.Errorf("key %q has %d values, expected %d", key, got, valuesByKey.CountOf(key))
		}
	}
	for _, value := range slices.Collect(keysByValue.Keys()) {
		if got := len(m.KeysOf(value)); got != keysByValue.CountOf(value) {
			return fmt.Errorf("value %q has %d keys, expected %d", value, got, keysByValue.CountOf(value))
		}
	}
	return nil
}
