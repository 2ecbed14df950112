package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

func perOp(total time.Duration, ops uint64) time.Duration {
	if ops == 0 {
		return 0
	}
	return total / time.Duration(ops)
}

func comma(n uint64) string {
	return humanize.Comma(int64(n))
}

// Print writes a human-readable summary of the report to w.
func (r *Report) Print(w io.Writer) {
	heading := color.New(color.Bold)
	stats := r.Stats

	heading.Fprintln(w, "bucket grid")
	fmt.Fprintf(w, "  dimensions:     %s x %s (%s buckets)\n", humanize.Comma(int64(stats.Rows)), humanize.Comma(int64(stats.Cols)), humanize.Comma(int64(stats.Buckets())))
	fmt.Fprintf(w, "  hasher:         %s (seed %d)\n", r.Config.Hasher, r.Seed)

	heading.Fprintln(w, "inserts")
	fmt.Fprintf(w, "  inserted:       %s\n", comma(r.Inserted))
	fmt.Fprintf(w, "  duplicates:     %s\n", comma(r.Duplicates))
	fmt.Fprintf(w, "  elapsed:        %s (%s/insert)\n", r.InsertTime, perOp(r.InsertTime, r.Inserted+r.Duplicates))

	heading.Fprintln(w, "lookups")
	fmt.Fprintf(w, "  by key:         %s lookups, %s results, %s/lookup\n", comma(r.KeyLookups), comma(r.KeyResults), perOp(r.KeyLookupTime, r.KeyLookups))
	fmt.Fprintf(w, "  by value:       %s lookups, %s results, %s/lookup\n", comma(r.ValueLookups), comma(r.ValueResults), perOp(r.ValueLookupTime, r.ValueLookups))

	heading.Fprintln(w, "occupancy")
	fmt.Fprintf(w, "  relations:      %s\n", humanize.Comma(int64(stats.Relations)))
	fmt.Fprintf(w, "  empty buckets:  %s\n", humanize.Comma(int64(stats.EmptyBuckets)))
	fmt.Fprintf(w, "  load factor:    %s\n", humanize.CommafWithDigits(stats.LoadFactor, 3))
	fmt.Fprintf(w, "  max:            %s\n", humanize.Comma(int64(stats.MaxOccupancy)))
	fmt.Fprintf(w, "  p50/p90/p99:    %s / %s / %s\n",
		humanize.CommafWithDigits(stats.P50Occupancy, 1),
		humanize.CommafWithDigits(stats.P90Occupancy, 1),
		humanize.CommafWithDigits(stats.P99Occupancy, 1),
	)

	if r.Verified {
		fmt.Fprintf(w, "  distinct keys:  %s\n", humanize.Comma(int64(r.DistinctKeys)))
		fmt.Fprintf(w, "  distinct values: %s\n", humanize.Comma(int64(r.DistinctValues)))
		fmt.Fprintln(w, color.GreenString("verified against reference model"))
	}
}
