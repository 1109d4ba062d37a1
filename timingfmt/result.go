// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timingfmt reads the timing log written by the thread-scaling
// benchmark driver.
//
// The log is line oriented. A header line of the form
//
//	Thread Count: N ...
//
// opens a block of repeated sub-experiments at N threads; each
// following data line carries one wall/user/system timing triple in
// fixed-width fields. A parse yields a dense Table of per-channel
// medians indexed by thread count.
package timingfmt

import "github.com/aclements/go-moremath/stats"

// A Record is one timed sub-experiment: the real, user, and system
// time in seconds.
type Record struct {
	Real float64
	User float64
	Sys  float64
}

// blockSize is the number of sub-experiments the driver runs at each
// thread count.
const blockSize = 3

// A block accumulates the records between one header line and the
// next (or the end of the input).
type block struct {
	// index is the 0-based row the block's medians will be stored
	// at, i.e. the declared thread count minus one.
	index   int
	records []Record
}

// Medians holds the per-channel medians of one block, in seconds.
type Medians struct {
	Real float64
	User float64
	Sys  float64
}

// A Table maps thread counts to median timings. Rows[i] holds the
// medians measured at i+1 threads.
//
// The table is sized by the thread count on the *first* header line
// of the input, not the largest count seen. The driver writes its
// headers in descending order, so in practice these coincide; an
// input whose later headers exceed the first is rejected rather than
// resized.
type Table struct {
	Rows []Medians
}

// NumThreads returns the number of thread counts the table covers.
func (t *Table) NumThreads() int {
	return len(t.Rows)
}

// medians computes the per-channel median of the records in b. Each
// channel is sorted and summarized independently.
func (b *block) medians() Medians {
	if len(b.records) == 0 {
		return Medians{}
	}
	rs := make([]float64, len(b.records))
	us := make([]float64, len(b.records))
	ss := make([]float64, len(b.records))
	for i, r := range b.records {
		rs[i], us[i], ss[i] = r.Real, r.User, r.Sys
	}
	return Medians{
		Real: median(rs),
		User: median(us),
		Sys:  median(ss),
	}
}

func median(xs []float64) float64 {
	return stats.Sample{Xs: xs}.Quantile(0.5)
}
